package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warroom-board-api/internal/domain"
	"warroom-board-api/internal/dto"
	"warroom-board-api/internal/response"
)

func intPtr(i int) *int {
	return &i
}

func TestColumnService_CreateColumn(t *testing.T) {
	owner := uuid.New()
	adminMember := uuid.New()
	plainMember := uuid.New()

	tests := []struct {
		name        string
		userID      uuid.UUID
		title       string
		wantErr     bool
		wantErrCode string
	}{
		{"성공: 소유자가 컬럼 추가", owner, "Review", false, ""},
		{"성공: admin 멤버가 컬럼 추가", adminMember, "Review", false, ""},
		{"실패: 일반 멤버는 구조 변경 불가", plainMember, "Review", true, response.ErrCodeForbidden},
		{"실패: 빈 제목", owner, "  ", true, response.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := memberBoard(owner,
				domain.Member{UserID: adminMember, Role: domain.RoleAdmin},
				domain.Member{UserID: plainMember, Role: domain.RoleMember},
			)
			saved := false
			mockBoardRepo := &MockBoardRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return board, nil
				},
				SaveFunc: func(ctx context.Context, b *domain.Board) error {
					saved = true
					return nil
				},
			}
			recorder := &MockRecorder{}
			broadcaster := &MockBroadcaster{}
			service := NewColumnService(mockBoardRepo, recorder, broadcaster, zap.NewNop())

			got, err := service.CreateColumn(context.Background(), tt.userID, board.ID, &dto.CreateColumnRequest{Title: tt.title})

			if tt.wantErr {
				if err == nil {
					t.Fatal("CreateColumn() error = nil, want error")
				}
				if appErr, ok := err.(*response.AppError); ok && appErr.Code != tt.wantErrCode {
					t.Errorf("error code = %v, want %v", appErr.Code, tt.wantErrCode)
				}
				if saved {
					t.Error("failed create must not save the board")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateColumn() unexpected error = %v", err)
			}
			if got.Title != "Review" || got.Order != 4 {
				t.Errorf("column = %+v, want Review at order 4", got)
			}
			if !saved {
				t.Error("board was not saved")
			}
			if recorder.LastAction() != domain.ActionColumnCreated {
				t.Errorf("recorded action = %v, want COLUMN_CREATED", recorder.LastAction())
			}
			if broadcaster.LastEvent() != EventColumnCreated {
				t.Errorf("broadcast event = %v, want %v", broadcaster.LastEvent(), EventColumnCreated)
			}
		})
	}
}

func TestColumnService_DeleteColumn(t *testing.T) {
	owner := uuid.New()
	board := memberBoard(owner)
	target := board.Columns[1].ID
	board.InsertTask(target, "will be destroyed", "")

	mockBoardRepo := &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return board, nil
		},
	}
	recorder := &MockRecorder{}
	broadcaster := &MockBroadcaster{}
	service := NewColumnService(mockBoardRepo, recorder, broadcaster, zap.NewNop())

	if err := service.DeleteColumn(context.Background(), owner, board.ID, target); err != nil {
		t.Fatalf("DeleteColumn() unexpected error = %v", err)
	}
	if len(board.Columns) != 2 {
		t.Errorf("Columns = %d, want 2", len(board.Columns))
	}
	// the audit record keeps the destroyed task count
	if got := recorder.Records[len(recorder.Records)-1].Meta["taskCount"]; got != 1 {
		t.Errorf("taskCount meta = %v, want 1", got)
	}
	if broadcaster.LastEvent() != EventColumnDeleted {
		t.Errorf("broadcast event = %v, want %v", broadcaster.LastEvent(), EventColumnDeleted)
	}
}

func TestColumnService_ReorderColumns(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name        string
		from, to    int
		wantErr     bool
		wantErrCode string
	}{
		{"성공: 마지막 컬럼을 맨 앞으로", 2, 0, false, ""},
		{"실패: 범위 밖 인덱스", 5, 0, true, response.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := memberBoard(owner)
			mockBoardRepo := &MockBoardRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return board, nil
				},
			}
			broadcaster := &MockBroadcaster{}
			service := NewColumnService(mockBoardRepo, &MockRecorder{}, broadcaster, zap.NewNop())

			got, err := service.ReorderColumns(context.Background(), owner, board.ID, &dto.ReorderColumnsRequest{
				From: intPtr(tt.from),
				To:   intPtr(tt.to),
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("ReorderColumns() error = nil, want error")
				}
				if appErr, ok := err.(*response.AppError); ok && appErr.Code != tt.wantErrCode {
					t.Errorf("error code = %v, want %v", appErr.Code, tt.wantErrCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReorderColumns() unexpected error = %v", err)
			}
			if got.Columns[0].Title != "Done" {
				t.Errorf("Columns[0] = %v, want Done", got.Columns[0].Title)
			}
			for i, col := range got.Columns {
				if col.Order != i+1 {
					t.Errorf("Columns[%d].Order = %d, want %d", i, col.Order, i+1)
				}
			}
			// reorders broadcast the full board, not a single column
			if broadcaster.LastEvent() != EventColumnReordered {
				t.Errorf("broadcast event = %v, want %v", broadcaster.LastEvent(), EventColumnReordered)
			}
		})
	}
}
