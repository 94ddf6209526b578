package wsmodels

type ServerMessage struct {
	ToCandidateID string `json:"-"`
	Time          string `json:"time"`     // event time
	Category      string `json:"category"` // notification category
	Title         string `json:"title"`
	Msg           string `json:"msg"`
}
