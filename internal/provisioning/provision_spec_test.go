package provisioning

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/create-bluewaves-app/internal/config"
	"github.com/imamik/create-bluewaves-app/internal/packagemanager"
	testutil "github.com/imamik/create-bluewaves-app/internal/testing"
	"github.com/imamik/create-bluewaves-app/internal/util/shell"
)

var _ = ginkgo.Describe("Provision", func() {
	var (
		dir      string
		runner   *testutil.RecordingRunner
		observer *RecordingObserver
		builder  *testutil.ConfigBuilder
	)

	newContext := func() *Context {
		cfg := builder.WithProject("surf-app", dir).Build()
		pm, ok := packagemanager.Lookup(cfg.PackageManager)
		Expect(ok).To(BeTrue())
		pm.Available = true
		return &Context{
			Context:        context.Background(),
			Config:         cfg,
			PackageManager: pm,
			Runner:         runner,
			Observer:       observer,
			Log:            logr.Discard(),
		}
	}

	startedSteps := func() []string {
		var started []string
		for _, e := range observer.Events() {
			if e.Type == EventStepStarted {
				started = append(started, e.Step)
			}
		}
		return started
	}

	ginkgo.BeforeEach(func() {
		dir = filepath.Join(ginkgo.GinkgoT().TempDir(), "surf-app")
		runner = testutil.NewRecordingRunner()
		observer = NewRecordingObserver()
		builder = testutil.NewConfigBuilder().WithPackageManager(config.PackageManagerPNPM)
	})

	ginkgo.When("every tool succeeds", func() {
		ginkgo.BeforeEach(func() {
			runner.OnCommand(NextAppPackage, testutil.NewScaffoldFixture(dir).Scaffold)
		})

		ginkgo.It("runs all seven steps in order", func() {
			Expect(Provision(newContext())).To(Succeed())
			Expect(startedSteps()).To(Equal([]string{
				LabelScaffold,
				LabelComponents,
				LabelDesignSystem,
				TemplateLabel(config.TemplateMinimal),
				LabelInstall,
				LabelGit,
				LabelFinalTouches,
			}))
		})

		ginkgo.It("scaffolds before installing components", func() {
			var manifestSeen bool
			runner.OnCommand("shadcn@latest init", func(shell.Command) error {
				_, err := os.Stat(filepath.Join(dir, "package.json"))
				manifestSeen = err == nil
				return nil
			})

			Expect(Provision(newContext())).To(Succeed())
			Expect(manifestSeen).To(BeTrue())

			lines := runner.CommandLines()
			Expect(lines[0]).To(ContainSubstring("create-next-app@latest"))
			Expect(lines[1]).To(ContainSubstring("shadcn@latest init"))
		})

		ginkgo.It("writes the generated files", func() {
			Expect(Provision(newContext())).To(Succeed())
			Expect(filepath.Join(dir, SurferConfigFile)).To(BeAnExistingFile())
			Expect(filepath.Join(dir, "README.md")).To(BeAnExistingFile())
			readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(readme)).To(ContainSubstring("pnpm run dev"))
		})

		ginkgo.It("leaves out skipped steps", func() {
			builder = builder.WithSkipInstall(true).WithSkipGit(true)
			Expect(Provision(newContext())).To(Succeed())
			Expect(startedSteps()).NotTo(ContainElement(LabelInstall))
			Expect(startedSteps()).NotTo(ContainElement(LabelGit))
			Expect(runner.CommandLines()).NotTo(ContainElement("pnpm install"))
		})
	})

	ginkgo.When("a step fails", func() {
		ginkgo.It("stops and reports exactly one failure", func() {
			runner.OnCommand(NextAppPackage, testutil.NewScaffoldFixture(dir).Scaffold)
			runner.OnCommand("pnpm install", func(shell.Command) error { return errors.New("ERR_PNPM_FETCH_404") })

			err := Provision(newContext())

			var stepErr *StepError
			Expect(errors.As(err, &stepErr)).To(BeTrue())
			Expect(stepErr.Step).To(Equal(LabelInstall))
			Expect(startedSteps()).NotTo(ContainElement(LabelGit))
			Expect(startedSteps()).NotTo(ContainElement(LabelFinalTouches))

			failures := 0
			for _, e := range observer.Events() {
				if e.Type == EventStepFailed {
					failures++
				}
			}
			Expect(failures).To(Equal(1))
			Expect(filepath.Join(dir, "README.md")).NotTo(BeAnExistingFile())
		})

		ginkgo.It("leaves the partial project on disk", func() {
			runner.OnCommand(NextAppPackage, testutil.NewScaffoldFixture(dir).Scaffold)
			runner.OnCommand("shadcn@latest init", func(shell.Command) error { return errors.New("exit status 1") })

			Expect(Provision(newContext())).To(HaveOccurred())
			Expect(filepath.Join(dir, "package.json")).To(BeAnExistingFile())
		})

		ginkgo.It("does not run the component installer without a scaffold", func() {
			err := Provision(newContext())

			Expect(err).To(MatchError(ErrManifestMissing))
			Expect(runner.CommandLines()).To(HaveLen(1))
		})
	})

	ginkgo.When("only git fails", func() {
		ginkgo.It("still succeeds and reports a warning", func() {
			runner.OnCommand(NextAppPackage, testutil.NewScaffoldFixture(dir).Scaffold)
			runner.OnCommand("git init", func(shell.Command) error { return errors.New("git: command not found") })

			Expect(Provision(newContext())).To(Succeed())
			Expect(observer.Warnings()).To(HaveLen(1))
			Expect(observer.Warnings()[0].Step).To(Equal(LabelGit))
			Expect(filepath.Join(dir, "README.md")).To(BeAnExistingFile())
		})
	})
})
