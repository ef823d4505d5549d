package mariadb

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/reelforge/reels-ms-go/internal/db"
)

func newSceneRepoMock(t *testing.T) (*SceneRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	return NewSceneRepository(sqlDB), mock, func() { _ = sqlDB.Close() }
}

func TestSceneRepository_ShiftNumbersUp_TwoPhase(t *testing.T) {
	repo, mock, closeDB := newSceneRepoMock(t)
	defer closeDB()

	projectID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

	mock.ExpectBegin()
	// rows first escape into the staging range, then settle one above their
	// old position
	mock.ExpectExec(`UPDATE scenes SET scene_number = scene_number \+ \? WHERE project_id = \? AND scene_number >= \?`).
		WithArgs(stagingOffset, projectID, 3).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`UPDATE scenes SET scene_number = scene_number - \? WHERE project_id = \? AND scene_number >= \?`).
		WithArgs(stagingOffset-1, projectID, stagingOffset).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	if err := repo.ShiftNumbersUp(context.Background(), projectID, 3); err != nil {
		t.Errorf("ShiftNumbersUp() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSceneRepository_ShiftNumbersUp_RollsBackOnError(t *testing.T) {
	repo, mock, closeDB := newSceneRepoMock(t)
	defer closeDB()

	projectID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE scenes SET scene_number = scene_number \+ \?`).
		WithArgs(stagingOffset, projectID, 1).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	if err := repo.ShiftNumbersUp(context.Background(), projectID, 1); err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSceneRepository_CloseGap_TwoPhase(t *testing.T) {
	repo, mock, closeDB := newSceneRepoMock(t)
	defer closeDB()

	projectID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE scenes SET scene_number = scene_number \+ \? WHERE project_id = \? AND scene_number > \?`).
		WithArgs(stagingOffset, projectID, 2).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE scenes SET scene_number = scene_number - \? WHERE project_id = \? AND scene_number >= \?`).
		WithArgs(stagingOffset+1, projectID, stagingOffset).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	if err := repo.CloseGap(context.Background(), projectID, 2); err != nil {
		t.Errorf("CloseGap() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSceneRepository_Renumber_AssignsContiguousPositions(t *testing.T) {
	repo, mock, closeDB := newSceneRepoMock(t)
	defer closeDB()

	projectID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	idA := db.UUID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	idB := db.UUID(uuid.MustParse("22222222-2222-2222-2222-222222222222"))
	idC := db.UUID(uuid.MustParse("33333333-3333-3333-3333-333333333333"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE scenes SET scene_number = scene_number \+ \? WHERE project_id = \?`).
		WithArgs(stagingOffset, projectID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE scenes SET scene_number = \? WHERE id = \? AND project_id = \?`).
		WithArgs(1, idC, projectID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE scenes SET scene_number = \? WHERE id = \? AND project_id = \?`).
		WithArgs(2, idA, projectID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE scenes SET scene_number = \? WHERE id = \? AND project_id = \?`).
		WithArgs(3, idB, projectID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Renumber(context.Background(), projectID, []db.UUID{idC, idA, idB}); err != nil {
		t.Errorf("Renumber() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSceneRepository_Renumber_RejectsForeignScene(t *testing.T) {
	repo, mock, closeDB := newSceneRepoMock(t)
	defer closeDB()

	projectID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	foreign := db.UUID(uuid.MustParse("99999999-9999-9999-9999-999999999999"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE scenes SET scene_number = scene_number \+ \? WHERE project_id = \?`).
		WithArgs(stagingOffset, projectID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE scenes SET scene_number = \? WHERE id = \? AND project_id = \?`).
		WithArgs(1, foreign, projectID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.Renumber(context.Background(), projectID, []db.UUID{foreign}); err == nil {
		t.Error("expected error for scene outside project, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
