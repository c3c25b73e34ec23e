package judge

import (
	"context"

	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/language"
	"github.com/minijudge/minijudge/internal/metrics"
	"github.com/minijudge/minijudge/internal/workspace"
)

// execute spawns exactly one run of the compiled artifact (or the source
// directly for interpreted languages), feeding stdin and classifying the
// result. Duration covers spawn to exit only, never workspace setup/teardown.
func (j *Judge) execute(ctx context.Context, profile language.Profile, ws *workspace.Workspace, stdin string) domain.ExecutionOutcome {
	argv := language.ExpandCommand(profile.RunCmd, ws.SourcePath, ws.ArtifactPath())

	// Launcher-resolved artifacts (java classes) must be run from inside
	// the workspace; everything else addresses its files absolutely.
	dir := ""
	if profile.RunInWorkspace {
		dir = ws.Root
	}

	res, err := runProcess(ctx, argv, dir, stdin, j.timeout)
	if err != nil {
		metrics.PipelineFaults.Inc()
		j.logger.Error("program spawn failed",
			zap.Strings("argv", argv),
			zap.Error(err),
		)
		return domain.ExecutionOutcome{
			Status: domain.StatusInternalError,
			Stderr: "failed to start program: " + err.Error(),
		}
	}

	metrics.StageDuration.WithLabelValues(profile.ID, "execute").Observe(res.duration.Seconds())

	if res.timedOut {
		return domain.ExecutionOutcome{
			Status:   domain.StatusExecutionTimeout,
			Stdout:   res.stdout,
			Stderr:   res.stderr,
			Duration: j.timeout,
		}
	}

	exitCode := res.exitCode
	outcome := domain.ExecutionOutcome{
		Stdout:   res.stdout,
		Stderr:   res.stderr,
		ExitCode: &exitCode,
		Duration: res.duration,
	}

	// A non-zero exit alone is not a failure; the program must also have
	// written diagnostics to stderr.
	if res.exitCode != 0 && res.stderr != "" {
		outcome.Status = domain.StatusRuntimeError
	} else {
		outcome.Status = domain.StatusOK
	}

	return outcome
}
