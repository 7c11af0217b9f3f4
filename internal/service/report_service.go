package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clothing_market/internal/model"
	"clothing_market/internal/repository"
)

const topProductsInReport = 5

// Notifier delivers a rendered report somewhere outside the API
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// ReportService builds and delivers the marketplace activity report
type ReportService interface {
	Generate(ctx context.Context, window time.Duration) (*model.ActivityReport, error)
	Deliver(ctx context.Context, window time.Duration) error
}

type reportService struct {
	repo     repository.StatsRepository
	notifier Notifier
	now      func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(repo repository.StatsRepository, notifier Notifier) ReportService {
	return &reportService{repo: repo, notifier: notifier, now: time.Now}
}

func (s *reportService) Generate(ctx context.Context, window time.Duration) (*model.ActivityReport, error) {
	now := s.now().UTC()
	report, err := s.repo.Collect(ctx, now.Add(-window), topProductsInReport)
	if err != nil {
		return nil, fmt.Errorf("failed to collect activity stats: %w", err)
	}
	report.GeneratedAt = now
	return report, nil
}

func (s *reportService) Deliver(ctx context.Context, window time.Duration) error {
	report, err := s.Generate(ctx, window)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Marketplace activity %s", report.GeneratedAt.Format("2006-01-02"))
	if err := s.notifier.Notify(ctx, subject, RenderReport(report)); err != nil {
		return fmt.Errorf("failed to deliver activity report: %w", err)
	}
	return nil
}

// RenderReport formats a report as plain text
func RenderReport(r *model.ActivityReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Activity since %s\n\n", r.Since.Format(time.RFC3339))
	fmt.Fprintf(&b, "Users:            %d (%d new)\n", r.TotalUsers, r.NewUsers)
	fmt.Fprintf(&b, "Products:         %d (%d new)\n", r.TotalProducts, r.NewProducts)
	fmt.Fprintf(&b, "Purchase intents: %d\n", r.NewIntents)
	fmt.Fprintf(&b, "Posts:            %d\n", r.NewPosts)

	if len(r.TopProducts) > 0 {
		b.WriteString("\nMost wanted:\n")
		for i, p := range r.TopProducts {
			fmt.Fprintf(&b, "%d. %s (%s): %d\n", i+1, p.Title, p.ProductID, p.Intents)
		}
	}
	return b.String()
}
