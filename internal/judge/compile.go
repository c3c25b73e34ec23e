package judge

import (
	"context"

	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/language"
	"github.com/minijudge/minijudge/internal/metrics"
	"github.com/minijudge/minijudge/internal/workspace"
)

// compile runs the profile's compile command against the workspace source,
// bounded by the same timeout budget as execution. It returns a non-nil
// outcome only on a terminal compile failure; nil means compiled (or no
// compile step was needed) and the run stage may proceed.
func (j *Judge) compile(ctx context.Context, profile language.Profile, ws *workspace.Workspace) *domain.ExecutionOutcome {
	if !profile.RequiresCompile {
		return nil
	}

	argv := language.ExpandCommand(profile.CompileCmd, ws.SourcePath, ws.ArtifactPath())

	res, err := runProcess(ctx, argv, ws.Root, "", j.timeout)
	if err != nil {
		metrics.PipelineFaults.Inc()
		j.logger.Error("compiler spawn failed",
			zap.Strings("argv", argv),
			zap.Error(err),
		)
		return &domain.ExecutionOutcome{
			Status: domain.StatusInternalError,
			Stderr: "failed to start compiler: " + err.Error(),
		}
	}

	metrics.StageDuration.WithLabelValues(profile.ID, "compile").Observe(res.duration.Seconds())

	if res.timedOut {
		return &domain.ExecutionOutcome{
			Status:   domain.StatusCompileTimeout,
			Stdout:   res.stdout,
			Stderr:   res.stderr,
			Duration: j.timeout,
		}
	}

	if res.exitCode != 0 {
		exitCode := res.exitCode
		return &domain.ExecutionOutcome{
			Status:   domain.StatusCompileError,
			Stdout:   res.stdout,
			Stderr:   res.stderr,
			ExitCode: &exitCode,
			Duration: res.duration,
		}
	}

	j.logger.Debug("compile succeeded",
		zap.String("language", profile.ID),
		zap.Duration("elapsed", res.duration),
	)
	return nil
}
