package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
)

// querier abstracts pool and transaction for shared scan helpers.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const offerColumns = `id, user_id, title, image, description, min_price, min_delivery_time, created_at, updated_at`

const detailColumns = `id, offer_id, title, revisions, delivery_time_in_days, price, features, offer_type`

func scanOffer(row pgx.Row) (*model.Offer, error) {
	var o model.Offer
	err := row.Scan(&o.ID, &o.UserID, &o.Title, &o.Image, &o.Description,
		&o.MinPrice, &o.MinDeliveryTime, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func scanDetail(row pgx.Row) (*model.OfferDetail, error) {
	var d model.OfferDetail
	var features []byte
	err := row.Scan(&d.ID, &d.OfferID, &d.Title, &d.Revisions, &d.DeliveryTimeInDays,
		&d.Price, &features, &d.OfferType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(features, &d.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return &d, nil
}

func queryDetails(ctx context.Context, q querier, query string, args ...any) ([]model.OfferDetail, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OfferDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func detailsByOffer(ctx context.Context, q querier, offerID int64) ([]model.OfferDetail, error) {
	query := `SELECT ` + detailColumns + ` FROM offer_details WHERE offer_id=$1 ORDER BY id`
	return queryDetails(ctx, q, query, offerID)
}

func insertDetail(ctx context.Context, tx pgx.Tx, offerID int64, d *model.OfferDetail) error {
	features, err := json.Marshal(featuresOrEmpty(d.Features))
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}
	const query = `INSERT INTO offer_details (offer_id, title, revisions, delivery_time_in_days, price, features, offer_type)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := tx.QueryRow(ctx, query, offerID, d.Title, d.Revisions, d.DeliveryTimeInDays,
		d.Price, features, d.OfferType).Scan(&d.ID); err != nil {
		return err
	}
	d.OfferID = offerID
	return nil
}

func featuresOrEmpty(features []string) []string {
	if features == nil {
		return []string{}
	}
	return features
}

func (r *offerRepository) Create(ctx context.Context, offer *model.Offer) (*model.Offer, error) {
	created := *offer
	created.Details = append([]model.OfferDetail(nil), offer.Details...)
	created.MinPrice, created.MinDeliveryTime = model.DeriveMins(created.Details)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO offers (user_id, title, image, description, min_price, min_delivery_time)
                       VALUES ($1, $2, $3, $4, $5, $6)
                       RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, query, created.UserID, created.Title, created.Image,
			created.Description, created.MinPrice, created.MinDeliveryTime,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			return err
		}

		for i := range created.Details {
			if err := insertDetail(ctx, tx, created.ID, &created.Details[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *offerRepository) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id=$1`
	offer, err := scanOffer(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	details, err := detailsByOffer(ctx, r.storage.pool, id)
	if err != nil {
		return nil, err
	}
	offer.Details = details
	return offer, nil
}

func buildOfferFilter(filter repository.OfferFilter) (string, []any) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.CreatorID != nil {
		args = append(args, *filter.CreatorID)
		conditions = append(conditions, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("min_price>=$%d", len(args)))
	}
	if filter.MaxDeliveryTime != nil {
		args = append(args, *filter.MaxDeliveryTime)
		conditions = append(conditions, fmt.Sprintf("min_delivery_time<=$%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func offerOrderClause(filter repository.OfferFilter) string {
	column := "updated_at"
	if filter.SortBy == repository.OfferSortMinPrice {
		column = "min_price"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", column, direction, direction)
}

func (r *offerRepository) List(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, int64, error) {
	where, args := buildOfferFilter(filter)

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM offers`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + offerColumns + ` FROM offers` + where + offerOrderClause(filter)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var offers []model.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, 0, err
		}
		offers = append(offers, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(offers) == 0 {
		return offers, total, nil
	}

	ids := make([]int64, 0, len(offers))
	index := make(map[int64]*model.Offer, len(offers))
	for i := range offers {
		ids = append(ids, offers[i].ID)
		index[offers[i].ID] = &offers[i]
	}

	detailQuery := `SELECT ` + detailColumns + ` FROM offer_details WHERE offer_id = ANY($1) ORDER BY id`
	details, err := queryDetails(ctx, r.storage.pool, detailQuery, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, d := range details {
		if offer, ok := index[d.OfferID]; ok {
			offer.Details = append(offer.Details, d)
		}
	}

	return offers, total, nil
}

func applyDetailPatch(existing *model.OfferDetail, patch repository.OfferDetailPatch) {
	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Revisions != nil {
		existing.Revisions = *patch.Revisions
	}
	if patch.DeliveryTimeInDays != nil {
		existing.DeliveryTimeInDays = *patch.DeliveryTimeInDays
	}
	if patch.Price != nil {
		existing.Price = *patch.Price
	}
	if patch.Features != nil {
		existing.Features = patch.Features
	}
}

func (r *offerRepository) upsertDetail(ctx context.Context, tx pgx.Tx, offerID int64, patch repository.OfferDetailPatch) error {
	query := `SELECT ` + detailColumns + ` FROM offer_details WHERE offer_id=$1 AND offer_type=$2`
	existing, err := scanDetail(tx.QueryRow(ctx, query, offerID, patch.OfferType))
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	if existing == nil {
		detail := model.OfferDetail{OfferType: patch.OfferType}
		applyDetailPatch(&detail, patch)
		return insertDetail(ctx, tx, offerID, &detail)
	}

	applyDetailPatch(existing, patch)
	features, err := json.Marshal(featuresOrEmpty(existing.Features))
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}
	const update = `UPDATE offer_details
                    SET title=$1, revisions=$2, delivery_time_in_days=$3, price=$4, features=$5
                    WHERE id=$6`
	_, err = tx.Exec(ctx, update, existing.Title, existing.Revisions, existing.DeliveryTimeInDays,
		existing.Price, features, existing.ID)
	return err
}

func (r *offerRepository) Update(ctx context.Context, id int64, patch repository.OfferPatch) (*model.Offer, error) {
	var updated *model.Offer
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		lockQuery := `SELECT ` + offerColumns + ` FROM offers WHERE id=$1 FOR UPDATE`
		if _, err := scanOffer(tx.QueryRow(ctx, lockQuery, id)); err != nil {
			return err
		}

		assignments := []string{"updated_at=NOW()"}
		args := []any{}
		addAssignment := func(column string, value *string) {
			if value == nil {
				return
			}
			args = append(args, *value)
			assignments = append(assignments, fmt.Sprintf("%s=$%d", column, len(args)))
		}
		addAssignment("title", patch.Title)
		addAssignment("image", patch.Image)
		addAssignment("description", patch.Description)

		args = append(args, id)
		updateQuery := fmt.Sprintf("UPDATE offers SET %s WHERE id=$%d", strings.Join(assignments, ", "), len(args))
		if _, err := tx.Exec(ctx, updateQuery, args...); err != nil {
			return err
		}

		for _, detailPatch := range patch.Details {
			if err := r.upsertDetail(ctx, tx, id, detailPatch); err != nil {
				return err
			}
		}

		details, err := detailsByOffer(ctx, tx, id)
		if err != nil {
			return err
		}
		minPrice, minDelivery := model.DeriveMins(details)
		if _, err := tx.Exec(ctx, `UPDATE offers SET min_price=$1, min_delivery_time=$2 WHERE id=$3`,
			minPrice, minDelivery, id); err != nil {
			return err
		}

		reloadQuery := `SELECT ` + offerColumns + ` FROM offers WHERE id=$1`
		offer, err := scanOffer(tx.QueryRow(ctx, reloadQuery, id))
		if err != nil {
			return err
		}
		offer.Details = details
		updated = offer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *offerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM offers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *offerRepository) GetDetail(ctx context.Context, detailID int64) (*model.OfferDetail, error) {
	query := `SELECT ` + detailColumns + ` FROM offer_details WHERE id=$1`
	return scanDetail(r.storage.pool.QueryRow(ctx, query, detailID))
}
