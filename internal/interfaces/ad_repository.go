// internal/interfaces/ad_repository.go
package interfaces

import (
    "context"
    "vitrine/internal/models"
)

// AdFilter defines the filter criteria for listing ads
type AdFilter struct {
    UserID   string
    Status   string
    Category string
    Location string
    MinPrice float64
    MaxPrice float64
    Limit    int
    Offset   int
}

// AdRepository defines the interface for ad data operations
type AdRepository interface {
    Create(ctx context.Context, ad *models.Ad) error
    GetByID(ctx context.Context, id string) (*models.Ad, error)
    List(ctx context.Context, filter AdFilter) ([]*models.Ad, error)
    Update(ctx context.Context, id string, ad *models.Ad) error
    UpdateStatus(ctx context.Context, id string, status models.AdStatus, reason string) error
    Delete(ctx context.Context, id string) error
}
