package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "errors"
    "fmt"
    "strings"

    "github.com/lib/pq"
    "vitrine/internal/interfaces"
    "vitrine/internal/models"
)

type adRepository struct {
    db *sql.DB
}

func NewAdRepository(db *sql.DB) interfaces.AdRepository {
    return &adRepository{db: db}
}

const adColumns = `
            id, user_id, status, presentation_name, age, gender, title,
            description, highlight_phrase, category, services_offered,
            target_audience, service_locations, availability_days,
            availability_hours, appointment_only, location, neighborhood,
            postal_code, accepts_travel, price, hourly_rate, packages,
            payment_methods, highlight_package, image_url, video_url,
            photos, videos, whatsapp, contact_telegram, contact_instagram,
            contact_email, contact_other, terms_accepted, age_confirmed,
            image_consent, accepts_last_minute, restrictions, personal_rules,
            favorite_fragrance, favorite_drink, preferred_gifts,
            favorite_music, rejection_reason, created_at, updated_at`

func (r *adRepository) Create(ctx context.Context, ad *models.Ad) error {
    hours, err := json.Marshal(ad.AvailabilityHours)
    if err != nil {
        return fmt.Errorf("failed to encode availability_hours: %w", err)
    }
    packages, err := json.Marshal(ad.Packages)
    if err != nil {
        return fmt.Errorf("failed to encode packages: %w", err)
    }

    query := `
        INSERT INTO ads (
            user_id, status, presentation_name, age, gender, title,
            description, highlight_phrase, category, services_offered,
            target_audience, service_locations, availability_days,
            availability_hours, appointment_only, location, neighborhood,
            postal_code, accepts_travel, price, hourly_rate, packages,
            payment_methods, highlight_package, image_url, video_url,
            photos, videos, whatsapp, contact_telegram, contact_instagram,
            contact_email, contact_other, terms_accepted, age_confirmed,
            image_consent, accepts_last_minute, restrictions, personal_rules,
            favorite_fragrance, favorite_drink, preferred_gifts, favorite_music
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
            $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
            $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38,
            $39, $40, $41, $42, $43
        )
        RETURNING id, created_at, updated_at
    `

    err = r.db.QueryRowContext(
        ctx,
        query,
        ad.UserID,
        ad.Status,
        ad.PresentationName,
        ad.Age,
        ad.Gender,
        ad.Title,
        ad.Description,
        ad.HighlightPhrase,
        ad.Category,
        pq.Array(emptyIfNil(ad.ServicesOffered)),
        pq.Array(emptyIfNil(ad.TargetAudience)),
        pq.Array(emptyIfNil(ad.ServiceLocations)),
        pq.Array(emptyIfNil(ad.AvailabilityDays)),
        hours,
        ad.AppointmentOnly,
        ad.Location,
        ad.Neighborhood,
        ad.PostalCode,
        ad.AcceptsTravel,
        ad.Price,
        ad.HourlyRate,
        packages,
        pq.Array(emptyIfNil(ad.PaymentMethods)),
        ad.Highlight,
        ad.ImageURL,
        ad.VideoURL,
        pq.Array(emptyIfNil(ad.Photos)),
        pq.Array(emptyIfNil(ad.Videos)),
        ad.WhatsApp,
        ad.ContactTelegram,
        ad.ContactInstagram,
        ad.ContactEmail,
        ad.ContactOther,
        ad.TermsAccepted,
        ad.AgeConfirmed,
        ad.ImageConsent,
        ad.AcceptsLastMinute,
        ad.Restrictions,
        ad.PersonalRules,
        ad.FavoriteFragrance,
        ad.FavoriteDrink,
        ad.PreferredGifts,
        ad.FavoriteMusic,
    ).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
    return err
}

func (r *adRepository) GetByID(ctx context.Context, id string) (*models.Ad, error) {
    query := `SELECT ` + adColumns + ` FROM ads WHERE id = $1`

    ad, err := scanAd(r.db.QueryRowContext(ctx, query, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, sql.ErrNoRows
        }
        return nil, err
    }
    return ad, nil
}

// List retrieves ads matching the filter, newest first
func (r *adRepository) List(ctx context.Context, filter interfaces.AdFilter) ([]*models.Ad, error) {
    query := `SELECT ` + adColumns + ` FROM ads WHERE 1=1`

    var args []interface{}
    var whereClauses []string
    argPos := 1

    if filter.UserID != "" {
        whereClauses = append(whereClauses, fmt.Sprintf("user_id = $%d", argPos))
        args = append(args, filter.UserID)
        argPos++
    }

    if filter.Status != "" {
        whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argPos))
        args = append(args, filter.Status)
        argPos++
    }

    if filter.Category != "" {
        whereClauses = append(whereClauses, fmt.Sprintf("category = $%d", argPos))
        args = append(args, filter.Category)
        argPos++
    }

    if filter.Location != "" {
        whereClauses = append(whereClauses, fmt.Sprintf("location ILIKE $%d", argPos))
        args = append(args, "%"+filter.Location+"%")
        argPos++
    }

    if filter.MinPrice > 0 {
        whereClauses = append(whereClauses, fmt.Sprintf("price >= $%d", argPos))
        args = append(args, filter.MinPrice)
        argPos++
    }

    if filter.MaxPrice > 0 {
        whereClauses = append(whereClauses, fmt.Sprintf("price <= $%d", argPos))
        args = append(args, filter.MaxPrice)
        argPos++
    }

    if len(whereClauses) > 0 {
        query += " AND " + strings.Join(whereClauses, " AND ")
    }

    query += " ORDER BY created_at DESC"

    if filter.Limit > 0 {
        query += fmt.Sprintf(" LIMIT $%d", argPos)
        args = append(args, filter.Limit)
        argPos++
    }

    if filter.Offset > 0 {
        query += fmt.Sprintf(" OFFSET $%d", argPos)
        args = append(args, filter.Offset)
    }

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var ads []*models.Ad
    for rows.Next() {
        ad, err := scanAd(rows)
        if err != nil {
            return nil, err
        }
        ads = append(ads, ad)
    }

    return ads, rows.Err()
}

// Update rewrites every draft column of an ad; moderation fields are
// handled by UpdateStatus instead
func (r *adRepository) Update(ctx context.Context, id string, ad *models.Ad) error {
    hours, err := json.Marshal(ad.AvailabilityHours)
    if err != nil {
        return fmt.Errorf("failed to encode availability_hours: %w", err)
    }
    packages, err := json.Marshal(ad.Packages)
    if err != nil {
        return fmt.Errorf("failed to encode packages: %w", err)
    }

    query := `
        UPDATE ads
        SET status = $1,
            presentation_name = $2,
            age = $3,
            gender = $4,
            title = $5,
            description = $6,
            highlight_phrase = $7,
            category = $8,
            services_offered = $9,
            target_audience = $10,
            service_locations = $11,
            availability_days = $12,
            availability_hours = $13,
            appointment_only = $14,
            location = $15,
            neighborhood = $16,
            postal_code = $17,
            accepts_travel = $18,
            price = $19,
            hourly_rate = $20,
            packages = $21,
            payment_methods = $22,
            highlight_package = $23,
            image_url = $24,
            video_url = $25,
            photos = $26,
            videos = $27,
            whatsapp = $28,
            contact_telegram = $29,
            contact_instagram = $30,
            contact_email = $31,
            contact_other = $32,
            terms_accepted = $33,
            age_confirmed = $34,
            image_consent = $35,
            accepts_last_minute = $36,
            restrictions = $37,
            personal_rules = $38,
            favorite_fragrance = $39,
            favorite_drink = $40,
            preferred_gifts = $41,
            favorite_music = $42,
            rejection_reason = '',
            updated_at = NOW() AT TIME ZONE 'UTC'
        WHERE id = $43
        RETURNING updated_at
    `

    err = r.db.QueryRowContext(
        ctx,
        query,
        ad.Status,
        ad.PresentationName,
        ad.Age,
        ad.Gender,
        ad.Title,
        ad.Description,
        ad.HighlightPhrase,
        ad.Category,
        pq.Array(emptyIfNil(ad.ServicesOffered)),
        pq.Array(emptyIfNil(ad.TargetAudience)),
        pq.Array(emptyIfNil(ad.ServiceLocations)),
        pq.Array(emptyIfNil(ad.AvailabilityDays)),
        hours,
        ad.AppointmentOnly,
        ad.Location,
        ad.Neighborhood,
        ad.PostalCode,
        ad.AcceptsTravel,
        ad.Price,
        ad.HourlyRate,
        packages,
        pq.Array(emptyIfNil(ad.PaymentMethods)),
        ad.Highlight,
        ad.ImageURL,
        ad.VideoURL,
        pq.Array(emptyIfNil(ad.Photos)),
        pq.Array(emptyIfNil(ad.Videos)),
        ad.WhatsApp,
        ad.ContactTelegram,
        ad.ContactInstagram,
        ad.ContactEmail,
        ad.ContactOther,
        ad.TermsAccepted,
        ad.AgeConfirmed,
        ad.ImageConsent,
        ad.AcceptsLastMinute,
        ad.Restrictions,
        ad.PersonalRules,
        ad.FavoriteFragrance,
        ad.FavoriteDrink,
        ad.PreferredGifts,
        ad.FavoriteMusic,
        id,
    ).Scan(&ad.UpdatedAt)

    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return sql.ErrNoRows
        }
        return fmt.Errorf("failed to update ad: %w", err)
    }

    return nil
}

// UpdateStatus moves an ad through moderation
func (r *adRepository) UpdateStatus(ctx context.Context, id string, status models.AdStatus, reason string) error {
    query := `
        UPDATE ads
        SET status = $1,
            rejection_reason = $2,
            updated_at = NOW() AT TIME ZONE 'UTC'
        WHERE id = $3
    `

    result, err := r.db.ExecContext(ctx, query, status, reason, id)
    if err != nil {
        return err
    }

    rowsAffected, err := result.RowsAffected()
    if err != nil {
        return err
    }
    if rowsAffected == 0 {
        return sql.ErrNoRows
    }
    return nil
}

func (r *adRepository) Delete(ctx context.Context, id string) error {
    result, err := r.db.ExecContext(ctx, "DELETE FROM ads WHERE id = $1", id)
    if err != nil {
        return err
    }

    rowsAffected, err := result.RowsAffected()
    if err != nil {
        return err
    }
    if rowsAffected == 0 {
        return sql.ErrNoRows
    }
    return nil
}

type rowScanner interface {
    Scan(dest ...interface{}) error
}

func scanAd(row rowScanner) (*models.Ad, error) {
    var ad models.Ad
    var hours, packages []byte

    err := row.Scan(
        &ad.ID,
        &ad.UserID,
        &ad.Status,
        &ad.PresentationName,
        &ad.Age,
        &ad.Gender,
        &ad.Title,
        &ad.Description,
        &ad.HighlightPhrase,
        &ad.Category,
        pq.Array(&ad.ServicesOffered),
        pq.Array(&ad.TargetAudience),
        pq.Array(&ad.ServiceLocations),
        pq.Array(&ad.AvailabilityDays),
        &hours,
        &ad.AppointmentOnly,
        &ad.Location,
        &ad.Neighborhood,
        &ad.PostalCode,
        &ad.AcceptsTravel,
        &ad.Price,
        &ad.HourlyRate,
        &packages,
        pq.Array(&ad.PaymentMethods),
        &ad.Highlight,
        &ad.ImageURL,
        &ad.VideoURL,
        pq.Array(&ad.Photos),
        pq.Array(&ad.Videos),
        &ad.WhatsApp,
        &ad.ContactTelegram,
        &ad.ContactInstagram,
        &ad.ContactEmail,
        &ad.ContactOther,
        &ad.TermsAccepted,
        &ad.AgeConfirmed,
        &ad.ImageConsent,
        &ad.AcceptsLastMinute,
        &ad.Restrictions,
        &ad.PersonalRules,
        &ad.FavoriteFragrance,
        &ad.FavoriteDrink,
        &ad.PreferredGifts,
        &ad.FavoriteMusic,
        &ad.RejectionReason,
        &ad.CreatedAt,
        &ad.UpdatedAt,
    )
    if err != nil {
        return nil, err
    }

    if len(hours) > 0 {
        if err := json.Unmarshal(hours, &ad.AvailabilityHours); err != nil {
            return nil, fmt.Errorf("failed to decode availability_hours: %w", err)
        }
    }
    if len(packages) > 0 {
        if err := json.Unmarshal(packages, &ad.Packages); err != nil {
            return nil, fmt.Errorf("failed to decode packages: %w", err)
        }
    }

    return &ad, nil
}

func emptyIfNil(xs []string) []string {
    if xs == nil {
        return []string{}
    }
    return xs
}
