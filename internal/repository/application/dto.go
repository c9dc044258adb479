package application

import (
	"fmt"

	"github.com/goccy/go-json"

	domapp "github.com/kailas-cloud/collabrec/internal/domain/application"
)

// applicationDoc is the stored JSON shape of an application.
type applicationDoc struct {
	ID          string `json:"id"`
	ApplicantID string `json:"applicantId"`
	ProjectID   string `json:"projectId"`
	Status      string `json:"status"`
}

func decodeApplication(raw []byte) (domapp.Application, error) {
	var d applicationDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return domapp.Application{}, fmt.Errorf("unmarshal application: %w", err)
	}
	if d.ID == "" {
		return domapp.Application{}, fmt.Errorf("application without id")
	}
	return domapp.Reconstruct(d.ID, d.ApplicantID, d.ProjectID, domapp.Status(d.Status)), nil
}

func encodeApplication(a domapp.Application) ([]byte, error) {
	return json.Marshal(applicationDoc{
		ID:          a.ID(),
		ApplicantID: a.ApplicantID(),
		ProjectID:   a.ProjectID(),
		Status:      string(a.Status()),
	})
}
