package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/comanlab/coman/datarecording"
	"github.com/comanlab/coman/event"
	"github.com/comanlab/coman/monitoring"
	"github.com/comanlab/coman/sched"
	"github.com/comanlab/coman/vtime"
)

var (
	demoSteps   int
	demoDelta   float64
	demoMonitor bool
	demoRecord  string
	demoVerbose bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a multi-agent scenario on the scheduler.",
	Long: `Demo starts a few agents that sleep, wait for events, and ` +
		`complete in a gather, then advances the virtual clock step by step.`,
	Run: func(_ *cobra.Command, _ []string) {
		runDemo()
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoSteps, "steps", 20,
		"number of clock updates to perform")
	demoCmd.Flags().Float64Var(&demoDelta, "delta", 0.5,
		"virtual seconds added per update")
	demoCmd.Flags().BoolVar(&demoMonitor, "monitor", false,
		"serve the scheduler state over HTTP")
	demoCmd.Flags().StringVar(&demoRecord, "record", "",
		"record fired events into this SQLite database")
	demoCmd.Flags().BoolVar(&demoVerbose, "verbose", false,
		"log every fired delayed event")

	rootCmd.AddCommand(demoCmd)
}

func runDemo() {
	scheduler := sched.NewScheduler()

	if demoVerbose {
		logger := log.New(os.Stdout, "", 0)
		scheduler.AcceptHook(sched.NewEventLogger(logger))
	}

	if demoRecord != "" {
		recorder := datarecording.NewSQLiteWriter(demoRecord)
		tracer := datarecording.NewTimelineTracer(recorder, "timeline")
		scheduler.AcceptHook(tracer)
	}

	if demoMonitor {
		monitor := monitoring.NewMonitor()
		if p, err := strconv.Atoi(os.Getenv("COMAN_MONITOR_PORT")); err == nil {
			monitor.WithPortNumber(p)
		}
		monitor.RegisterScheduler(scheduler)
		monitor.StartServer()
	}

	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("worker-%d", i)
		naps := vtime.VTime(i + 1)

		scheduler.Start(sched.NewTask(func(ctx *sched.Context) {
			fmt.Printf("[%5.2f] %s: starting\n", scheduler.CurrentTime(), name)
			ctx.Sleep(naps)
			fmt.Printf("[%5.2f] %s: halfway\n", scheduler.CurrentTime(), name)
			ctx.Sleep(naps)
			fmt.Printf("[%5.2f] %s: done\n", scheduler.CurrentTime(), name)
		}))
	}

	scheduler.Start(sched.NewTask(func(ctx *sched.Context) {
		ctx.WaitForEvent("launch")
		fmt.Printf("[%5.2f] observer: launch seen\n", scheduler.CurrentTime())
	}))

	phases := []*sched.Task{
		sched.NewTask(func(ctx *sched.Context) { ctx.Sleep(1) }),
		sched.NewTask(func(ctx *sched.Context) { ctx.Sleep(2) }),
		sched.NewTask(func(ctx *sched.Context) { ctx.Sleep(3) }),
	}
	scheduler.Start(sched.NewTask(func(ctx *sched.Context) {
		ctx.Await(scheduler.Gather(phases))
		fmt.Printf("[%5.2f] gather: all phases finished\n",
			scheduler.CurrentTime())
	}))

	for i := 0; i < demoSteps; i++ {
		scheduler.Update(vtime.VTime(demoDelta))

		if i == demoSteps/2 {
			scheduler.EventBus().RaiseEvent(event.Event("launch"))
		}
	}

	fmt.Printf("[%5.2f] demo finished, %d delayed events still pending\n",
		scheduler.CurrentTime(), scheduler.PendingDelayedEvents())
}
