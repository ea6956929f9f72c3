package mock

import (
	"context"

	"github.com/threepipe/huey"
)

var _ huey.LawService = (*LawService)(nil)

// LawService is a mock implementation of huey.LawService.
type LawService struct {
	CreateLawFn   func(ctx context.Context, law *huey.LawDocument) error
	FindLawByIDFn func(ctx context.Context, id string) (*huey.LawDocument, error)
	FindLawsFn    func(ctx context.Context, filter huey.LawFilter) ([]*huey.LawDocument, error)
}

func (s *LawService) CreateLaw(ctx context.Context, law *huey.LawDocument) error {
	return s.CreateLawFn(ctx, law)
}

func (s *LawService) FindLawByID(ctx context.Context, id string) (*huey.LawDocument, error) {
	return s.FindLawByIDFn(ctx, id)
}

func (s *LawService) FindLaws(ctx context.Context, filter huey.LawFilter) ([]*huey.LawDocument, error) {
	return s.FindLawsFn(ctx, filter)
}
