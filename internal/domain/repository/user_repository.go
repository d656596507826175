package repository

import "github.com/tu-usuario/logistica-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// List pagina los usuarios no eliminados; devuelve página y total.
	List(limit, offset int) ([]*entity.User, int, error)
}
