package pilflow

import "log/slog"

// MissingContexts returns the subset of required context names absent from
// the Pack, preserving the input order. An empty result means every required
// context is present.
func (p *Pack) MissingContexts(required []string) []string {
	var missing []string
	for _, name := range required {
		if !p.HasContext(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// LogMissingContexts reports which of the required contexts are absent and,
// for each, which registered producer operations could supply it. The report
// is advisory: nothing is raised, and the caller decides whether a missing
// context is fatal for the named operation.
//
// Suggestions come exclusively from the producer registry. A missing context
// with no registered producer is logged as such rather than guessed at.
func (p *Pack) LogMissingContexts(logger *slog.Logger, required []string, operation string) {
	missing := p.MissingContexts(required)
	if len(missing) == 0 {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("operation requires missing contexts",
		"operation", operation,
		"missing", missing,
	)
	for _, name := range missing {
		producers := p.registry.Producers(name)
		if len(producers) == 0 {
			logger.Info("no registered producer for missing context",
				"operation", operation,
				"context", name,
			)
			continue
		}
		for _, producer := range producers {
			logger.Info("run operation to obtain missing context",
				"operation", operation,
				"context", name,
				"producer", producer,
			)
		}
	}
}
