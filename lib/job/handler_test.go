package job

import (
	"testing"

	"github.com/dukeika/interview-portal-sub001/models"
	dbmodels "github.com/dukeika/interview-portal-sub001/models/db"

	"github.com/stretchr/testify/require"
)

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
}

func (s *fakeJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }
func (s *fakeJobStore) Update(id, companyID string, updMap map[string]interface{}) error {
	return nil
}
func (s *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	return s.jobs[id], nil
}
func (s *fakeJobStore) ListByCompany(companyID string, page, limit int) ([]dbmodels.Job, int64, error) {
	return nil, 0, nil
}
func (s *fakeJobStore) ListPublished(page, limit int) ([]dbmodels.Job, int64, error) {
	return nil, 0, nil
}
func (s *fakeJobStore) Delete(id, companyID string) error { return nil }

func newTestHandler(jobs ...dbmodels.Job) impl {
	store := &fakeJobStore{jobs: map[string]*dbmodels.Job{}}
	for i := range jobs {
		store.jobs[jobs[i].ID] = &jobs[i]
	}
	return impl{store: store}
}

func seedJob(id, companyID string, status models.JobStatus) dbmodels.Job {
	return dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: id},
		CompanyID: companyID,
		Title:     "Backend Engineer",
		Status:    status,
	}
}

func TestGet(t *testing.T) {
	t.Run(`own job check`, func(t *testing.T) {
		handler := newTestHandler(seedJob("job-1", "company-1", models.JobStatusDraft))
		view, err := handler.Get("company-1", "job-1")
		require.Nil(t, err)
		require.Equal(t, "job-1", view.ID)
	})

	t.Run(`foreign company check`, func(t *testing.T) {
		handler := newTestHandler(seedJob("job-1", "company-1", models.JobStatusPublished))
		_, err := handler.Get("company-2", "job-1")
		require.NotNil(t, err)
	})

	t.Run(`missing job check`, func(t *testing.T) {
		handler := newTestHandler()
		_, err := handler.Get("company-1", "job-1")
		require.NotNil(t, err)
	})
}

func TestGetPublished(t *testing.T) {
	t.Run(`published job check`, func(t *testing.T) {
		handler := newTestHandler(seedJob("job-1", "company-1", models.JobStatusPublished))
		view, err := handler.GetPublished("job-1")
		require.Nil(t, err)
		require.Equal(t, string(models.JobStatusPublished), view.Status)
	})

	t.Run(`draft stays hidden check`, func(t *testing.T) {
		handler := newTestHandler(seedJob("job-1", "company-1", models.JobStatusDraft))
		_, err := handler.GetPublished("job-1")
		require.NotNil(t, err)
	})

	t.Run(`closed stays hidden check`, func(t *testing.T) {
		handler := newTestHandler(seedJob("job-1", "company-1", models.JobStatusClosed))
		_, err := handler.GetPublished("job-1")
		require.NotNil(t, err)
	})
}
