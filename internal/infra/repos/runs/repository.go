package runs

import "github.com/mmrzaf/dataz/internal/domain"

// Repository stores run metadata for the dataz run history DB.
type Repository interface {
	Init() error
	Create(run *domain.Run) error
	Update(run *domain.Run) error
	Get(id string) (*domain.Run, error)
	List(limit int, status string) ([]*domain.Run, error)
	Close() error
}
