package capture

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/genricoloni/displayfollow/internal/domain"
	"github.com/genricoloni/displayfollow/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func intPtr(i int) *int { return &i }

func TestFindDisplayField(t *testing.T) {
	tests := []struct {
		name        string
		settings    domain.Settings
		expectedKey string
		expectError bool
	}{
		{
			name:        "First Match Wins",
			settings:    domain.Settings{{Key: "show_cursor", Value: true}, {Key: "screen", Value: 1.0}, {Key: "display", Value: 2.0}},
			expectedKey: "screen",
		},
		{
			name:        "Case Insensitive",
			settings:    domain.Settings{{Key: "Monitor_ID", Value: "DP-1"}},
			expectedKey: "Monitor_ID",
		},
		{
			name:        "Substring Match",
			settings:    domain.Settings{{Key: "capture_display_uuid", Value: "abc"}},
			expectedKey: "capture_display_uuid",
		},
		{
			name:        "No Display Key",
			settings:    domain.Settings{{Key: "show_cursor", Value: true}, {Key: "window", Value: "x"}},
			expectError: true,
		},
		{
			name:        "Empty Settings",
			settings:    nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _, err := FindDisplayField(tt.settings)
			if tt.expectError {
				if !errors.Is(err, ErrFieldNotFound) {
					t.Fatalf("expected ErrFieldNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key != tt.expectedKey {
				t.Errorf("want key %q, got %q", tt.expectedKey, key)
			}
		})
	}
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name     string
		current  any
		desired  domain.DisplayValue
		fallback *int
		expected any
	}{
		{
			name:     "Numeric Current - Unparseable Name - Fallback Used",
			current:  float64(2),
			desired:  domain.StringValue("DP-1"),
			fallback: intPtr(3),
			expected: float64(3),
		},
		{
			name:     "Numeric Current - Unparseable Name - No Fallback",
			current:  float64(2),
			desired:  domain.StringValue("DP-1"),
			expected: float64(0),
		},
		{
			name:     "Numeric Current - Numeric String",
			current:  float64(0),
			desired:  domain.StringValue(" 1 "),
			fallback: intPtr(5),
			expected: float64(1),
		},
		{
			name:     "Numeric Current - Number",
			current:  float64(0),
			desired:  domain.NumberValue(2),
			expected: float64(2),
		},
		{
			name:     "NaN Current Treated As Numeric",
			current:  math.NaN(),
			desired:  domain.StringValue("HDMI-1"),
			fallback: intPtr(1),
			expected: float64(1),
		},
		{
			name:     "String Current - Numeric Desired",
			current:  "HDMI-1",
			desired:  domain.NumberValue(1),
			expected: "1",
		},
		{
			name:     "String Current - String Desired",
			current:  "HDMI-1",
			desired:  domain.StringValue("DP-2"),
			fallback: intPtr(4),
			expected: "DP-2",
		},
		{
			name:     "Nil Current Is Not Numeric",
			current:  nil,
			desired:  domain.NumberValue(0),
			expected: "0",
		},
		{
			name:     "Blank String Does Not Parse",
			current:  float64(7),
			desired:  domain.StringValue("   "),
			fallback: intPtr(2),
			expected: float64(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceValue(tt.current, tt.desired, tt.fallback)
			if got != tt.expected {
				t.Errorf("want %#v, got %#v", tt.expected, got)
			}
		})
	}
}

func TestUpdater_Update(t *testing.T) {
	const input = "Screen Capture"

	tests := []struct {
		name        string
		setupMock   func(*mocks.MockController)
		value       domain.DisplayValue
		fallback    *int
		expectError error
	}{
		{
			name: "Success - Overlay Only Display Field",
			setupMock: func(m *mocks.MockController) {
				m.EXPECT().GetInputSettings(gomock.Any(), input).Return(domain.Settings{
					{Key: "show_cursor", Value: true},
					{Key: "screen", Value: float64(0)},
				}, nil)
				m.EXPECT().SetInputSettings(gomock.Any(), input,
					domain.Settings{{Key: "screen", Value: float64(2)}}, true).Return(nil)
			},
			value:    domain.StringValue("DP-1"),
			fallback: intPtr(2),
		},
		{
			name: "String Field Receives Name",
			setupMock: func(m *mocks.MockController) {
				m.EXPECT().GetInputSettings(gomock.Any(), input).Return(domain.Settings{
					{Key: "monitor_id", Value: "eDP-1"},
				}, nil)
				m.EXPECT().SetInputSettings(gomock.Any(), input,
					domain.Settings{{Key: "monitor_id", Value: "DP-1"}}, true).Return(nil)
			},
			value: domain.StringValue("DP-1"),
		},
		{
			name: "No Display Field",
			setupMock: func(m *mocks.MockController) {
				m.EXPECT().GetInputSettings(gomock.Any(), input).Return(domain.Settings{
					{Key: "window", Value: "firefox"},
				}, nil)
			},
			value:       domain.StringValue("DP-1"),
			expectError: ErrFieldNotFound,
		},
		{
			name: "Get Fails",
			setupMock: func(m *mocks.MockController) {
				m.EXPECT().GetInputSettings(gomock.Any(), input).Return(nil, errSentinel)
			},
			value:       domain.StringValue("DP-1"),
			expectError: errSentinel,
		},
		{
			name: "Set Fails",
			setupMock: func(m *mocks.MockController) {
				m.EXPECT().GetInputSettings(gomock.Any(), input).Return(domain.Settings{
					{Key: "display", Value: float64(0)},
				}, nil)
				m.EXPECT().SetInputSettings(gomock.Any(), input, gomock.Any(), true).Return(errSentinel)
			},
			value:       domain.NumberValue(1),
			expectError: errSentinel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			controller := mocks.NewMockController(ctrl)
			tt.setupMock(controller)

			u := NewUpdater(zap.NewNop(), controller)
			err := u.Update(context.Background(), input, tt.value, tt.fallback)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

var errSentinel = errors.New("request rejected")
