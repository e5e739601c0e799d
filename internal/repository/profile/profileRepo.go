package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/go-redis/redis"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	likesCacheTTL   = 24 * time.Hour
	matchesCacheTTL = 30 * 24 * time.Hour
)

type IProfileRepo interface {
	Get(ctx context.Context, id int64) (*entity.Profile, error)
	Upsert(ctx context.Context, p *entity.Profile) (created bool, err error)
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	IncrementCoins(ctx context.Context, id int64, delta int) error

	GetLikes(ctx context.Context, id int64) ([]int64, error)
	GetMatches(ctx context.Context, id int64) ([]int64, error)

	// CreateLike records a directed like edge and reports whether it
	// completed a new mutual match. The call is atomic per user pair.
	CreateLike(ctx context.Context, likerID, targetID int64) (matched bool, err error)

	FindCandidate(ctx context.Context, filter entity.CandidateFilter) (*entity.Profile, error)

	CountActive(ctx context.Context) (int64, error)
	SumMatchDegrees(ctx context.Context) (int64, error)
	ListActiveIDs(ctx context.Context) ([]int64, error)
}

type ProfileRepo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) IProfileRepo {
	return &ProfileRepo{
		db:  db,
		rdb: rdb,
	}
}

// storageErr maps driver failures into the core taxonomy while keeping
// record-not-found as its own condition.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
}

func (r *ProfileRepo) Get(ctx context.Context, id int64) (*entity.Profile, error) {
	var profile entity.Profile
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&profile)
	if res.Error != nil {
		return nil, storageErr(res.Error)
	}
	return &profile, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, p *entity.Profile) (bool, error) {
	// created derives from the insert itself, so two racing first
	// registrations cannot both report a fresh profile.
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(p)

	if res.Error != nil {
		return false, storageErr(res.Error)
	}
	if res.RowsAffected == 1 {
		return true, nil
	}

	// Existing row: refresh the descriptive fields only. Coins and blocked
	// are owned by the quiz engine and the admin ban path; re-registration
	// must not reset them.
	res = r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"nickname":  p.Nickname,
			"age":       p.Age,
			"country":   p.Country,
			"city":      p.City,
			"gender":    p.Gender,
			"interests": p.Interests,
			"photo_url": p.PhotoURL,
		})

	if res.Error != nil {
		return false, storageErr(res.Error)
	}
	return false, nil
}

func (r *ProfileRepo) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("id = ?", id).
		Update("blocked", blocked)

	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ProfileRepo) IncrementCoins(ctx context.Context, id int64, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("id = ?", id).
		Update("coins", gorm.Expr("GREATEST(coins + ?, 0)", delta))

	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ProfileRepo) GetLikes(ctx context.Context, id int64) ([]int64, error) {
	return r.edgeIDs(ctx, id, &entity.LikeEdge{}, likesCacheKey(id), likesCacheTTL)
}

func (r *ProfileRepo) GetMatches(ctx context.Context, id int64) ([]int64, error) {
	return r.edgeIDs(ctx, id, &entity.MatchEdge{}, matchesCacheKey(id), matchesCacheTTL)
}

// edgeIDs reads an id set through the redis cache, falling back to the
// edge table on a miss.
func (r *ProfileRepo) edgeIDs(ctx context.Context, id int64, model interface{}, cacheKey string, ttl time.Duration) ([]int64, error) {
	var ids []int64

	exists, err := r.rdb.Exists(cacheKey).Result()
	if err == nil && exists > 0 {
		if err := r.rdb.SMembers(cacheKey).ScanSlice(&ids); err == nil {
			return ids, nil
		}
	}

	res := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ?", id).
		Order("target_id ASC").
		Pluck("target_id", &ids)

	if res.Error != nil {
		return nil, storageErr(res.Error)
	}

	if len(ids) > 0 {
		members := make([]interface{}, len(ids))
		for i, v := range ids {
			members[i] = v
		}
		if err := r.rdb.SAdd(cacheKey, members...).Err(); err != nil {
			log.Println("error caching edge ids:", err)
		}
		r.rdb.Expire(cacheKey, ttl)
	}

	return ids, nil
}

func (r *ProfileRepo) CreateLike(ctx context.Context, likerID, targetID int64) (bool, error) {
	var matched bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lo, hi := likerID, targetID
		if lo > hi {
			lo, hi = hi, lo
		}

		// Pair-level advisory lock: concurrent likes in either direction
		// serialize here, so exactly one call observes the mutual edge
		// first and creates the match.
		pairKey := fmt.Sprintf("pair:%d:%d", lo, hi)
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", pairKey).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entity.LikeEdge{UserID: likerID, TargetID: targetID, CreatedAt: now}).Error; err != nil {
			return err
		}

		var reverse int64
		if err := tx.Model(&entity.LikeEdge{}).
			Where("user_id = ? AND target_id = ?", targetID, likerID).
			Count(&reverse).Error; err != nil {
			return err
		}
		if reverse == 0 {
			return nil
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entity.MatchEdge{UserID: likerID, TargetID: targetID, CreatedAt: now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Match already existed; nothing new to report.
			return nil
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entity.MatchEdge{UserID: targetID, TargetID: likerID, CreatedAt: now}).Error; err != nil {
			return err
		}

		matched = true
		return nil
	})

	if err != nil {
		return false, storageErr(err)
	}

	r.appendEdgeCache(likesCacheKey(likerID), targetID)
	if matched {
		r.appendEdgeCache(matchesCacheKey(likerID), targetID)
		r.appendEdgeCache(matchesCacheKey(targetID), likerID)
	}

	return matched, nil
}

func (r *ProfileRepo) FindCandidate(ctx context.Context, filter entity.CandidateFilter) (*entity.Profile, error) {
	genders := make([]string, len(filter.Genders))
	for i, g := range filter.Genders {
		genders[i] = string(g)
	}

	query := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("blocked = FALSE").
		Where("LOWER(city) = LOWER(?)", filter.City).
		Where("gender IN ?", genders)

	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}
	if len(filter.Interests) > 0 {
		query = query.Where("interests && ?", pq.StringArray(filter.Interests))
	}

	var candidate entity.Profile
	res := query.Order("id ASC").First(&candidate)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			// No viable candidate is a normal outcome, not a failure.
			return nil, nil
		}
		return nil, storageErr(res.Error)
	}

	return &candidate, nil
}

func (r *ProfileRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	res := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("blocked = FALSE").
		Count(&count)

	return count, storageErr(res.Error)
}

func (r *ProfileRepo) SumMatchDegrees(ctx context.Context) (int64, error) {
	var sum int64
	res := r.db.WithContext(ctx).
		Model(&entity.MatchEdge{}).
		Count(&sum)

	return sum, storageErr(res.Error)
}

func (r *ProfileRepo) ListActiveIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	res := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("blocked = FALSE").
		Order("id ASC").
		Pluck("id", &ids)

	return ids, storageErr(res.Error)
}

// Private helpers

func (r *ProfileRepo) appendEdgeCache(cacheKey string, id int64) {
	exists, err := r.rdb.Exists(cacheKey).Result()
	if err != nil || exists == 0 {
		// Cold cache; the next read repopulates from the edge table.
		return
	}
	if err := r.rdb.SAdd(cacheKey, id).Err(); err != nil {
		log.Println("error appending edge cache:", err)
	}
}

func likesCacheKey(id int64) string {
	return "user:" + strconv.FormatInt(id, 10) + ":likes"
}

func matchesCacheKey(id int64) string {
	return "user:" + strconv.FormatInt(id, 10) + ":matches"
}
