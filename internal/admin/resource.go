package admin

import (
	"context"

	"github.com/nexatech/nexatech-web/internal/content/domain"
)

// Resource is the token-scoped backend collection a Manager edits.
type Resource[T any] interface {
	List(ctx context.Context, token string) ([]T, error)
	Create(ctx context.Context, token string, item T) error
	Update(ctx context.Context, token, id string, item T) error
	Delete(ctx context.Context, token, id string) error
}

// API is the subset of the backend client used by the admin views.
type API interface {
	Services(ctx context.Context, token string) ([]domain.Service, error)
	CreateService(ctx context.Context, token string, s domain.Service) error
	UpdateService(ctx context.Context, token, id string, s domain.Service) error
	DeleteService(ctx context.Context, token, id string) error

	Portfolio(ctx context.Context, token string) ([]domain.PortfolioItem, error)
	CreatePortfolio(ctx context.Context, token string, p domain.PortfolioItem) error
	UpdatePortfolio(ctx context.Context, token, id string, p domain.PortfolioItem) error
	DeletePortfolio(ctx context.Context, token, id string) error

	Contacts(ctx context.Context, token string) ([]domain.Contact, error)
	UpdateContactStatus(ctx context.Context, token, id string, status domain.ContactStatus) error
	DeleteContact(ctx context.Context, token, id string) error
}

type serviceResource struct{ api API }

func (r serviceResource) List(ctx context.Context, token string) ([]domain.Service, error) {
	return r.api.Services(ctx, token)
}

func (r serviceResource) Create(ctx context.Context, token string, s domain.Service) error {
	return r.api.CreateService(ctx, token, s)
}

func (r serviceResource) Update(ctx context.Context, token, id string, s domain.Service) error {
	return r.api.UpdateService(ctx, token, id, s)
}

func (r serviceResource) Delete(ctx context.Context, token, id string) error {
	return r.api.DeleteService(ctx, token, id)
}

type portfolioResource struct{ api API }

func (r portfolioResource) List(ctx context.Context, token string) ([]domain.PortfolioItem, error) {
	return r.api.Portfolio(ctx, token)
}

func (r portfolioResource) Create(ctx context.Context, token string, p domain.PortfolioItem) error {
	return r.api.CreatePortfolio(ctx, token, p)
}

func (r portfolioResource) Update(ctx context.Context, token, id string, p domain.PortfolioItem) error {
	return r.api.UpdatePortfolio(ctx, token, id, p)
}

func (r portfolioResource) Delete(ctx context.Context, token, id string) error {
	return r.api.DeletePortfolio(ctx, token, id)
}
