package capture

import (
	"context"
	"fmt"

	"github.com/genricoloni/displayfollow/internal/domain"
	"go.uber.org/zap"
)

// Updater retargets a capture input to another display
type Updater struct {
	logger     *zap.Logger
	controller domain.Controller
}

// NewUpdater creates an updater that talks to the given controller
func NewUpdater(logger *zap.Logger, controller domain.Controller) *Updater {
	return &Updater{logger: logger, controller: controller}
}

// Update reads the input settings, locates the display field and overwrites only that field.
// fallbackIndex is used when the field is numeric and value does not parse as a number.
func (u *Updater) Update(ctx context.Context, inputName string, value domain.DisplayValue, fallbackIndex *int) error {
	settings, err := u.controller.GetInputSettings(ctx, inputName)
	if err != nil {
		return fmt.Errorf("failed to get settings of input %q: %w", inputName, err)
	}

	key, current, err := FindDisplayField(settings)
	if err != nil {
		return fmt.Errorf("input %q (keys %v): %w", inputName, settings.Keys(), err)
	}

	next := CoerceValue(current, value, fallbackIndex)

	u.logger.Debug("Updating capture input",
		zap.String("input", inputName),
		zap.String("key", key),
		zap.Any("current", current),
		zap.String("currentType", fmt.Sprintf("%T", current)),
		zap.Any("next", next),
		zap.String("nextType", fmt.Sprintf("%T", next)))

	patch := domain.Settings{{Key: key, Value: next}}
	if err := u.controller.SetInputSettings(ctx, inputName, patch, true); err != nil {
		return fmt.Errorf("failed to set %s on input %q: %w", key, inputName, err)
	}

	return nil
}
