package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

// stagingOffset pushes scene numbers into a range no terminal state can
// occupy, so bulk shifts never collide on the (project_id, scene_number)
// uniqueness constraint. Scene counts stay far below it.
const stagingOffset = 1_000_000

type SceneRepository struct {
	db *sql.DB
}

// compile-time check: *SceneRepository must satisfy port.SceneRepository
var _ port.SceneRepository = (*SceneRepository)(nil)

func NewSceneRepository(db *sql.DB) *SceneRepository {
	return &SceneRepository{db: db}
}

const sceneColumns = `id, project_id, scene_number, description, narration,
             caption_text, timing_plan, image_prompt, b_roll_prompt, duration,
             media_type, media_uri, media_trim_start, media_trim_end, media_animation,
             audio_uri, created_at, updated_at`

func (r *SceneRepository) Create(ctx context.Context, s *model.Scene) error {
	log.Printf("creating database record for scene #%s at position %d...", s.ID, s.SceneNumber)

	const query = `
      INSERT INTO scenes
        (id, project_id, scene_number, description, narration,
         caption_text, timing_plan, image_prompt, b_roll_prompt, duration,
         media_type, media_uri, media_trim_start, media_trim_end, media_animation, audio_uri)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.ProjectID, s.SceneNumber, s.Description, s.Narration,
		s.CaptionText, s.TimingPlan, s.ImagePrompt, s.BRollPrompt, s.Duration,
		s.MediaType, s.MediaURI, s.MediaTrimStart, s.MediaTrimEnd, s.MediaAnimation, s.AudioURI,
	)
	return err
}

func (r *SceneRepository) CreateBatch(ctx context.Context, scenes []model.Scene) error {
	if len(scenes) == 0 {
		return nil
	}
	log.Printf("creating %d scene records for project #%s...", len(scenes), scenes[0].ProjectID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
      INSERT INTO scenes
        (id, project_id, scene_number, description, narration,
         caption_text, timing_plan, image_prompt, b_roll_prompt, duration,
         media_type, media_uri, media_trim_start, media_trim_end, media_animation, audio_uri)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	for i := range scenes {
		s := &scenes[i]
		if _, err := tx.ExecContext(ctx, query,
			s.ID, s.ProjectID, s.SceneNumber, s.Description, s.Narration,
			s.CaptionText, s.TimingPlan, s.ImagePrompt, s.BRollPrompt, s.Duration,
			s.MediaType, s.MediaURI, s.MediaTrimStart, s.MediaTrimEnd, s.MediaAnimation, s.AudioURI,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SceneRepository) Update(ctx context.Context, s *model.Scene) error {
	log.Printf("updating database record for scene #%s...", s.ID)

	const query = `
      UPDATE scenes
      SET
        description      = ?,
        narration        = ?,
        caption_text     = ?,
        timing_plan      = ?,
        image_prompt     = ?,
        b_roll_prompt    = ?,
        duration         = ?,
        media_type       = ?,
        media_uri        = ?,
        media_trim_start = ?,
        media_trim_end   = ?,
        media_animation  = ?,
        audio_uri        = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		s.Description, s.Narration, s.CaptionText, s.TimingPlan,
		s.ImagePrompt, s.BRollPrompt, s.Duration,
		s.MediaType, s.MediaURI, s.MediaTrimStart, s.MediaTrimEnd, s.MediaAnimation,
		s.AudioURI,
		s.ID,
	)
	return err
}

func (r *SceneRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Scene, error) {
	log.Printf("fetching scene #%s from the database...", ID)

	query := `SELECT ` + sceneColumns + ` FROM scenes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, ID)
	return scanScene(row)
}

func (r *SceneRepository) ListByProject(ctx context.Context, projectID db.UUID) ([]model.Scene, error) {
	log.Printf("listing scenes of project #%s...", projectID)

	query := `SELECT ` + sceneColumns + ` FROM scenes WHERE project_id = ? ORDER BY scene_number ASC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenes []model.Scene
	for rows.Next() {
		s, err := scanScene(rows)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, *s)
	}
	return scenes, rows.Err()
}

func (r *SceneRepository) CountByProject(ctx context.Context, projectID db.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM scenes WHERE project_id = ?`, projectID).Scan(&n)
	return n, err
}

func (r *SceneRepository) Delete(ctx context.Context, ID db.UUID) error {
	log.Printf("deleting scene #%s from the database...", ID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM scenes WHERE id = ?`, ID)
	return err
}

func (r *SceneRepository) DeleteByProject(ctx context.Context, projectID db.UUID) error {
	log.Printf("deleting all scenes of project #%s...", projectID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM scenes WHERE project_id = ?`, projectID)
	return err
}

// ShiftNumbersUp moves every scene numbered >= from up by one. The rows pass
// through the staging range first; a single decrementing UPDATE could pair
// two rows on the same number mid-statement and trip the unique key.
func (r *SceneRepository) ShiftNumbersUp(ctx context.Context, projectID db.UUID, from int) error {
	log.Printf("shifting scenes of project #%s up from position %d...", projectID, from)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE scenes SET scene_number = scene_number + ? WHERE project_id = ? AND scene_number >= ?`,
		stagingOffset, projectID, from,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE scenes SET scene_number = scene_number - ? WHERE project_id = ? AND scene_number >= ?`,
		stagingOffset-1, projectID, stagingOffset,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// CloseGap decrements scene_number for every scene numbered above the given
// position, using the same stage-then-settle pattern as ShiftNumbersUp.
func (r *SceneRepository) CloseGap(ctx context.Context, projectID db.UUID, above int) error {
	log.Printf("closing scene numbering gap above position %d for project #%s...", above, projectID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE scenes SET scene_number = scene_number + ? WHERE project_id = ? AND scene_number > ?`,
		stagingOffset, projectID, above,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE scenes SET scene_number = scene_number - ? WHERE project_id = ? AND scene_number >= ?`,
		stagingOffset+1, projectID, stagingOffset,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// Renumber stages every scene of the project into the disjoint range, then
// settles each id to its final 1-based position in the given order. The
// staging range is never a valid terminal state, so a failure before commit
// rolls back cleanly and can be retried.
func (r *SceneRepository) Renumber(ctx context.Context, projectID db.UUID, orderedIDs []db.UUID) error {
	log.Printf("renumbering %d scenes of project #%s...", len(orderedIDs), projectID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE scenes SET scene_number = scene_number + ? WHERE project_id = ?`,
		stagingOffset, projectID,
	); err != nil {
		return err
	}

	for i, id := range orderedIDs {
		res, err := tx.ExecContext(ctx,
			`UPDATE scenes SET scene_number = ? WHERE id = ? AND project_id = ?`,
			i+1, id, projectID,
		)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("scene #%s does not belong to project #%s", id, projectID)
		}
	}
	return tx.Commit()
}

// scanScene reads one scene row from either *sql.Row or *sql.Rows.
func scanScene(row interface{ Scan(dest ...any) error }) (*model.Scene, error) {
	var s model.Scene
	if err := row.Scan(
		&s.ID, &s.ProjectID, &s.SceneNumber, &s.Description, &s.Narration,
		&s.CaptionText, &s.TimingPlan, &s.ImagePrompt, &s.BRollPrompt, &s.Duration,
		&s.MediaType, &s.MediaURI, &s.MediaTrimStart, &s.MediaTrimEnd, &s.MediaAnimation,
		&s.AudioURI, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
