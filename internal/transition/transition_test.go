package transition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/genricoloni/displayfollow/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRunner_Run(t *testing.T) {
	errRejected := errors.New("rejected")

	tests := []struct {
		name        string
		opts        Options
		setupMock   func(*mocks.MockController)
		expectError bool
	}{
		{
			name: "Full Sequence - Studio Mode Off",
			opts: Options{Name: "Fade", Duration: 300 * time.Millisecond, HasDuration: true, AutoStudioMode: true},
			setupMock: func(m *mocks.MockController) {
				gomock.InOrder(
					m.EXPECT().GetStudioModeEnabled(gomock.Any()).Return(false, nil),
					m.EXPECT().SetStudioModeEnabled(gomock.Any(), true).Return(nil),
					m.EXPECT().SetCurrentSceneTransition(gomock.Any(), "Fade").Return(nil),
					m.EXPECT().SetCurrentSceneTransitionDuration(gomock.Any(), 300*time.Millisecond).Return(nil),
					m.EXPECT().TriggerStudioModeTransition(gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "Studio Mode Already On",
			opts: Options{AutoStudioMode: true},
			setupMock: func(m *mocks.MockController) {
				gomock.InOrder(
					m.EXPECT().GetStudioModeEnabled(gomock.Any()).Return(true, nil),
					m.EXPECT().TriggerStudioModeTransition(gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "Trigger Only",
			opts: Options{},
			setupMock: func(m *mocks.MockController) {
				m.EXPECT().TriggerStudioModeTransition(gomock.Any()).Return(nil)
			},
		},
		{
			name: "Zero Duration Still Sent",
			opts: Options{HasDuration: true},
			setupMock: func(m *mocks.MockController) {
				gomock.InOrder(
					m.EXPECT().SetCurrentSceneTransitionDuration(gomock.Any(), time.Duration(0)).Return(nil),
					m.EXPECT().TriggerStudioModeTransition(gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "Name Rejected Aborts Sequence",
			opts: Options{Name: "Missing"},
			setupMock: func(m *mocks.MockController) {
				m.EXPECT().SetCurrentSceneTransition(gomock.Any(), "Missing").Return(errRejected)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			controller := mocks.NewMockController(ctrl)
			tt.setupMock(controller)

			err := NewRunner(zap.NewNop(), controller, tt.opts).Run(context.Background())
			if tt.expectError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
