package repository

import (
	"database/sql"
	"errors"

	"github.com/ipupy/tesoreria/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrChurchNotFound = errors.New("church not found")
)

type ChurchRepository interface {
	Create(church *model.Church) error
	ByID(id int64) (*model.Church, error)
	All() ([]*model.Church, error)
}

type churchRepository struct {
	db *sqlx.DB
}

func NewChurchRepository(db *sqlx.DB) *churchRepository {
	return &churchRepository{db: db}
}

func (r *churchRepository) Create(church *model.Church) error {
	query := `INSERT INTO churches (name, city, pastor, phone, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return r.db.Get(&church.ID, query,
		church.Name,
		church.City,
		church.Pastor,
		church.Phone,
		church.CreatedAt,
	)
}

func (r *churchRepository) ByID(id int64) (*model.Church, error) {
	church := &model.Church{}
	query := `SELECT * FROM churches WHERE id = $1`

	err := r.db.Get(church, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChurchNotFound
	}

	return church, err
}

func (r *churchRepository) All() ([]*model.Church, error) {
	var churches []*model.Church
	query := `SELECT * FROM churches ORDER BY name`

	err := r.db.Select(&churches, query)
	if err != nil {
		return nil, err
	}

	return churches, nil
}
