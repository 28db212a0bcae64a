// Command briefing composes the daily edition once, or every day with -cron.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deep-summarizer/app"
	"deep-summarizer/config"
	"deep-summarizer/logger"
	"deep-summarizer/scheduler"
	"deep-summarizer/trace"
)

const (
	runTimeout = 10 * time.Minute
	jobName    = "daily-briefing"
)

func main() {
	preview := flag.Bool("preview", false, "compose without writing and print the edition as markdown")
	out := flag.String("out", "", "with -preview, write the markdown to this file instead of stdout")
	cronMode := flag.Bool("cron", false, "run every day at briefing.schedule in briefing.timezone until interrupted")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	run := func(ctx context.Context) error {
		res, err := a.Editions.Run(ctx, *preview)
		if err != nil {
			return err
		}
		if *preview {
			if *out == "" {
				_, err = fmt.Fprint(os.Stdout, res.Markdown)
				return err
			}
			return os.WriteFile(*out, []byte(res.Markdown), 0o644)
		}
		logger.InfoWithFields("edition stored", logger.WithTrace(ctx, logger.Fields{"title": res.Title, "date": res.Date, "url": res.EditionURL}))
		return nil
	}

	if !*cronMode {
		runCtx, cancel := context.WithTimeout(trace.StartJob(ctx, jobName), runTimeout)
		defer cancel()
		if err := run(runCtx); err != nil {
			log.Fatal(err)
		}
		return
	}

	s, err := scheduler.New(cfg.Briefing.Timezone, runTimeout)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Daily(cfg.Briefing.Schedule, jobName, run); err != nil {
		log.Fatal(err)
	}
	s.Start()
	logger.InfoWithFields("briefing scheduled", logger.Fields{
		"schedule": cfg.Briefing.Schedule,
		"timezone": cfg.Briefing.Timezone,
		"next":     s.Next().Format(time.RFC3339),
	})

	<-ctx.Done()
	s.Stop()
}
