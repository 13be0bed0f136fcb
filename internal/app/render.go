package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/ui/style"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(style.Teal).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(style.Slate)
	okStyle     = lipgloss.NewStyle().Foreground(style.Green)
	warnStyle   = lipgloss.NewStyle().Foreground(style.Yellow)
	errorStyle  = lipgloss.NewStyle().Foreground(style.Red)
)

// renderStatus renders the sync state followed by the cache diagnostics.
func (a *App) renderStatus() {
	a.renderState(a.controller.State())

	status := a.registry.Status()
	fmt.Fprintln(a.out, headerStyle.Render("Caches"))
	fmt.Fprintf(a.out, "  %s %d registered, %d expired, %s on disk\n",
		dimStyle.Render(style.Dot),
		status.TotalCaches,
		status.ExpiredCount,
		formatBytes(status.TotalSizeBytes),
	)

	names := make([]string, 0, len(status.Identities))
	for _, id := range status.Identities {
		names = append(names, string(id))
	}
	if len(names) > 0 {
		fmt.Fprintf(a.out, "  %s\n", dimStyle.Render(strings.Join(names, ", ")))
	}
}

func (a *App) renderState(state domain.PlanSyncState) {
	week := a.controller.SelectedWeek()

	switch state.Phase {
	case domain.PhaseReady:
		a.renderPlan(state.Plan)
	case domain.PhaseLoading:
		fmt.Fprintf(a.out, "%s loading week %d\n", warnStyle.Render(style.Circle), week)
	case domain.PhaseNoPlan:
		fmt.Fprintf(a.out, "%s no plan for week %d\n", dimStyle.Render(style.Circle), week)
		fmt.Fprintln(a.out, dimStyle.Render("  run `plansync generate` to create the next week"))
	case domain.PhaseCompleted:
		fmt.Fprintf(a.out, "%s training cycle completed\n", okStyle.Render(style.Check))
	case domain.PhaseError:
		fmt.Fprintf(a.out, "%s sync failed at %s\n",
			errorStyle.Render(style.Cross), state.ErrorInfo.Step)
		a.logger.Error(state.ErrorInfo.Err)
	}
}

func (a *App) renderPlan(plan *domain.WeeklyPlan) {
	header := fmt.Sprintf("Week %d", plan.WeekNumber)
	if plan.TotalWeeks > 0 {
		header = fmt.Sprintf("Week %d of %d", plan.WeekNumber, plan.TotalWeeks)
	}
	fmt.Fprintf(a.out, "%s %s\n", okStyle.Render(style.Check), headerStyle.Render(header))

	for _, workout := range plan.Workouts {
		line := fmt.Sprintf("  %s %s  %s %dm %s",
			dimStyle.Render(style.Dot),
			formatDay(workout.Day),
			workout.Title,
			workout.DurationMinutes,
			workout.Sport,
		)
		if workout.TargetPaceSecPerKm > 0 {
			line += dimStyle.Render("  " + style.Arrow + " " + formatPace(workout.TargetPaceSecPerKm))
		}
		fmt.Fprintln(a.out, line)
	}
}

// formatDay renders an epoch-day ordinal as a calendar day.
func formatDay(day int64) string {
	return time.Unix(day*24*60*60, 0).UTC().Format("Mon Jan 02")
}

func formatPace(secPerKm int) string {
	return fmt.Sprintf("%d:%02d/km", secPerKm/60, secPerKm%60)
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
