package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type ProjectRepository struct {
	db *sql.DB
}

// compile-time check: *ProjectRepository must satisfy port.ProjectRepository
var _ port.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	log.Printf("creating database record for project #%s, at status %q...", p.ID, p.Status)

	const query = `
      INSERT INTO projects
        (id, owner_id, title, topic, script, refined_script, style, status,
         video_uri, video_provider, video_operation_id,
         preview_uri, preview_status, preview_progress, preview_message, scenes_count)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.OwnerID, p.Title, p.Topic, p.Script, p.RefinedScript, p.Style, p.Status,
		p.VideoURI, p.VideoProvider, p.VideoOperationID,
		p.PreviewURI, p.PreviewStatus, p.PreviewProgress, p.PreviewMessage, p.ScenesCount,
	)
	return err
}

func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	log.Printf("updating database record for project #%s...", p.ID)

	const query = `
      UPDATE projects
      SET
        title              = ?,
        topic              = ?,
        script             = ?,
        refined_script     = ?,
        style              = ?,
        status             = ?,
        video_uri          = ?,
        video_provider     = ?,
        video_operation_id = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		p.Title, p.Topic, p.Script, p.RefinedScript, p.Style, p.Status,
		p.VideoURI, p.VideoProvider, p.VideoOperationID,
		p.ID,
	)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Project, error) {
	log.Printf("fetching project #%s from the database...", ID)

	const query = `
      SELECT id, owner_id, title, topic, script, refined_script, style, status,
             video_uri, video_provider, video_operation_id,
             preview_uri, preview_status, preview_progress, preview_message,
             scenes_count, created_at, updated_at
      FROM projects
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	var p model.Project
	if err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Topic, &p.Script, &p.RefinedScript, &p.Style, &p.Status,
		&p.VideoURI, &p.VideoProvider, &p.VideoOperationID,
		&p.PreviewURI, &p.PreviewStatus, &p.PreviewProgress, &p.PreviewMessage,
		&p.ScenesCount, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, ID db.UUID) error {
	log.Printf("deleting project #%s from the database...", ID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, ID)
	return err
}

func (r *ProjectRepository) UpdateScenesCount(ctx context.Context, ID db.UUID, count int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE projects SET scenes_count = ? WHERE id = ?`, count, ID)
	return err
}

func (r *ProjectRepository) SetPreviewProcessing(ctx context.Context, ID db.UUID) error {
	log.Printf("marking preview of project #%s as processing...", ID)

	const query = `
      UPDATE projects
      SET preview_status = ?, preview_progress = 0, preview_message = NULL
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, model.PreviewStatusProcessing, ID)
	return err
}

func (r *ProjectRepository) UpdatePreviewProgress(ctx context.Context, ID db.UUID, progress int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects SET preview_progress = ? WHERE id = ?`, progress, ID)
	return err
}

func (r *ProjectRepository) SetPreviewCompleted(ctx context.Context, ID db.UUID, uri string) error {
	log.Printf("marking preview of project #%s as completed...", ID)

	const query = `
      UPDATE projects
      SET preview_status = ?, preview_progress = 100, preview_uri = ?, preview_message = NULL
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, model.PreviewStatusCompleted, uri, ID)
	return err
}

// SetPreviewFailed records the failure message but leaves preview_progress at
// its last persisted value so callers can see how far the render got.
func (r *ProjectRepository) SetPreviewFailed(ctx context.Context, ID db.UUID, message string) error {
	log.Printf("marking preview of project #%s as failed: %s", ID, message)

	const query = `
      UPDATE projects
      SET preview_status = ?, preview_message = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, model.PreviewStatusFailed, message, ID)
	return err
}

func (r *ProjectRepository) SetVideoOperation(ctx context.Context, ID db.UUID, provider, operationID string) error {
	const query = `
      UPDATE projects
      SET video_provider = ?, video_operation_id = ?, status = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, provider, operationID, model.ProjectStatusInProgress, ID)
	return err
}

func (r *ProjectRepository) SetVideoCompleted(ctx context.Context, ID db.UUID, uri string) error {
	const query = `
      UPDATE projects
      SET video_uri = ?, video_operation_id = NULL, status = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, uri, model.ProjectStatusCompleted, ID)
	return err
}

func (r *ProjectRepository) ClearVideoOperation(ctx context.Context, ID db.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects SET video_operation_id = NULL WHERE id = ?`, ID)
	return err
}
