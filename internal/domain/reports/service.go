package reports

import (
	"context"
	"fmt"

	"family-care/internal/domain/feedback"
	"family-care/internal/domain/payments"

	"github.com/montanaflynn/stats"
)

// Counter es lo único que el reporte necesita de la mayoría de las colecciones.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

type PaymentSource interface {
	Counter
	All(ctx context.Context) ([]payments.Payment, error)
}

type FeedbackSource interface {
	Counter
	All(ctx context.Context) ([]feedback.Feedback, error)
}

type Sources struct {
	Users         Counter
	FamilyMembers Counter
	Pets          Counter
	Schedules     Counter
	Payments      PaymentSource
	Feedback      FeedbackSource
}

// Report es el resumen del dashboard de admin. Se recalcula en cada request.
type Report struct {
	TotalUsers         int     `json:"totalUsers"`
	TotalPets          int     `json:"totalPets"`
	TotalPayments      int     `json:"totalPayments"`
	TotalSchedules     int     `json:"totalSchedules"`
	TotalFamilyMembers int     `json:"totalFamilyMembers"`
	TotalFeedback      int     `json:"totalFeedback"`
	TotalRevenue       float64 `json:"totalRevenue"`
	AverageRating      float64 `json:"averageRating"`
}

type Service struct {
	src Sources
}

func NewService(src Sources) *Service {
	return &Service{src: src}
}

func (s *Service) Report(ctx context.Context) (Report, error) {
	var (
		rep Report
		err error
	)

	counts := []struct {
		name string
		c    Counter
		dst  *int
	}{
		{"users", s.src.Users, &rep.TotalUsers},
		{"pets", s.src.Pets, &rep.TotalPets},
		{"payments", s.src.Payments, &rep.TotalPayments},
		{"schedules", s.src.Schedules, &rep.TotalSchedules},
		{"family members", s.src.FamilyMembers, &rep.TotalFamilyMembers},
		{"feedback", s.src.Feedback, &rep.TotalFeedback},
	}
	for _, c := range counts {
		if *c.dst, err = c.c.Count(ctx); err != nil {
			return Report{}, fmt.Errorf("count %s: %w", c.name, err)
		}
	}

	pays, err := s.src.Payments.All(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list payments: %w", err)
	}
	amounts := make(stats.Float64Data, 0, len(pays))
	for _, p := range pays {
		amounts = append(amounts, p.Amount)
	}
	rep.TotalRevenue = sumOrZero(amounts)

	fbs, err := s.src.Feedback.All(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list feedback: %w", err)
	}
	ratings := make(stats.Float64Data, 0, len(fbs))
	for _, f := range fbs {
		ratings = append(ratings, float64(f.Rating))
	}
	rep.AverageRating = meanOrZero(ratings)

	return rep, nil
}

// stats devuelve EmptyInputErr con slices vacíos; para el dashboard eso es 0.
func sumOrZero(d stats.Float64Data) float64 {
	if d.Len() == 0 {
		return 0
	}
	v, err := stats.Sum(d)
	if err != nil {
		return 0
	}
	return v
}

func meanOrZero(d stats.Float64Data) float64 {
	if d.Len() == 0 {
		return 0
	}
	v, err := stats.Mean(d)
	if err != nil {
		return 0
	}
	return v
}
