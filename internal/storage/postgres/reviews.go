package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
)

const reviewColumns = `id, business_user_id, reviewer_id, rating, description, created_at, updated_at`

func scanReview(row pgx.Row) (*model.Review, error) {
	var rv model.Review
	err := row.Scan(&rv.ID, &rv.BusinessUserID, &rv.ReviewerID, &rv.Rating,
		&rv.Description, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (business_user_id, reviewer_id, rating, description)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	created := *review
	err := r.storage.pool.QueryRow(ctx, query,
		review.BusinessUserID, review.ReviewerID, review.Rating, review.Description,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id=$1`
	return scanReview(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if filter.BusinessUserID != nil {
		args = append(args, *filter.BusinessUserID)
		conditions = append(conditions, fmt.Sprintf("business_user_id=$%d", len(args)))
	}
	if filter.ReviewerID != nil {
		args = append(args, *filter.ReviewerID)
		conditions = append(conditions, fmt.Sprintf("reviewer_id=$%d", len(args)))
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	column := "updated_at"
	if filter.SortBy == repository.ReviewSortRating {
		column = "rating"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id %s", column, direction, direction)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reviewRepository) Update(ctx context.Context, id int64, patch repository.ReviewPatch) (*model.Review, error) {
	assignments := []string{"updated_at=NOW()"}
	args := []any{}
	if patch.Rating != nil {
		args = append(args, *patch.Rating)
		assignments = append(assignments, fmt.Sprintf("rating=$%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		assignments = append(assignments, fmt.Sprintf("description=$%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE reviews SET %s WHERE id=$%d RETURNING `+reviewColumns,
		strings.Join(assignments, ", "), len(args))
	return scanReview(r.storage.pool.QueryRow(ctx, query, args...))
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
