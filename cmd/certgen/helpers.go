package main

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const durationPrecision = 10 * time.Millisecond

var stageTitle = cases.Title(language.Und)

// humanizeStage turns a stage identifier into a display label.
func humanizeStage(stage string) string {
	if stage == "" {
		return "Workflow"
	}
	return stageTitle.String(stage)
}
