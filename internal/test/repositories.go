package test

import (
	"context"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
	"github.com/ratedir/ratedir/internal/domain/model"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers an account unless the email is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	created := *user
	created.ID = s.Next
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.Next++
	s.ByEmail[created.Email] = &created
	s.ByID[created.ID] = &created
	return &created, nil
}

// GetByEmail fetches an account by email or reports not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches an account by identifier or reports not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update applies non-nil fields to the stored account.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, update model.UserUpdate, passwordHash *string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	user.UpdatedAt = time.Now()
	return user, nil
}

// List filters stored accounts the way the SQL implementation does.
func (s *UserRepositoryStub) List(ctx context.Context, filter model.UserFilter) ([]model.PublicUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ids := make([]int64, 0, len(s.ByID))
	for id := range s.ByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.PublicUser
	search := strings.ToLower(filter.Search)
	for _, id := range ids {
		u := s.ByID[id]
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) &&
			!strings.Contains(strings.ToLower(u.Address), search) {
			continue
		}
		result = append(result, u.Public())
	}
	return result, nil
}

// Delete removes a stored account.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, user.Email)
	delete(s.ByID, id)
	return nil
}

// Count reports the number of stored accounts.
func (s *UserRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.ByID)), nil
}

// StoreRepositoryStub keeps stores in-memory with ownership scoping
// applied in the same place the SQL implementation applies it.
type StoreRepositoryStub struct {
	Stores map[int64]*model.Store
	Owners map[int64]model.OwnerInfo
	Next   int64
	Err    error
}

// NewStoreRepositoryStub constructs stub repository with initialized maps.
func NewStoreRepositoryStub() *StoreRepositoryStub {
	return &StoreRepositoryStub{
		Stores: make(map[int64]*model.Store),
		Owners: make(map[int64]model.OwnerInfo),
		Next:   1,
	}
}

func (s *StoreRepositoryStub) orderedIDs() []int64 {
	ids := make([]int64, 0, len(s.Stores))
	for id := range s.Stores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Create stores a new record owned by store.OwnerID.
func (s *StoreRepositoryStub) Create(ctx context.Context, store *model.Store) (*model.Store, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	created := *store
	created.ID = s.Next
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.Next++
	s.Stores[created.ID] = &created
	return &created, nil
}

// GetByID returns the store with its owner identity.
func (s *StoreRepositoryStub) GetByID(ctx context.Context, id int64) (*model.StoreWithOwner, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	store, ok := s.Stores[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &model.StoreWithOwner{Store: *store, Owner: s.Owners[store.OwnerID]}, nil
}

// List applies the same substring filters as the SQL implementation.
func (s *StoreRepositoryStub) List(ctx context.Context, filter model.StoreFilter) ([]model.StoreWithOwner, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.StoreWithOwner
	name := strings.ToLower(filter.Name)
	address := strings.ToLower(filter.Address)
	for _, id := range s.orderedIDs() {
		store := s.Stores[id]
		if name != "" && !strings.Contains(strings.ToLower(store.Name), name) {
			continue
		}
		if address != "" && !strings.Contains(strings.ToLower(store.Address), address) {
			continue
		}
		result = append(result, model.StoreWithOwner{Store: *store, Owner: s.Owners[store.OwnerID]})
	}
	return result, nil
}

// ListByOwner returns only rows with the matching owner id.
func (s *StoreRepositoryStub) ListByOwner(ctx context.Context, ownerID int64) ([]model.Store, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Store
	for _, id := range s.orderedIDs() {
		if store := s.Stores[id]; store.OwnerID == ownerID {
			result = append(result, *store)
		}
	}
	return result, nil
}

// Update mutates the store only when the owner matches.
func (s *StoreRepositoryStub) Update(ctx context.Context, id, ownerID int64, update model.StoreUpdate) (*model.Store, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	store, ok := s.Stores[id]
	if !ok || store.OwnerID != ownerID {
		return nil, domainErrors.ErrNotFound
	}
	if update.Name != nil {
		store.Name = *update.Name
	}
	if update.Email != nil {
		store.Email = *update.Email
	}
	if update.Address != nil {
		store.Address = *update.Address
	}
	store.UpdatedAt = time.Now()
	return store, nil
}

// Delete removes the store only when the owner matches.
func (s *StoreRepositoryStub) Delete(ctx context.Context, id, ownerID int64) error {
	if s.Err != nil {
		return s.Err
	}
	store, ok := s.Stores[id]
	if !ok || store.OwnerID != ownerID {
		return domainErrors.ErrNotFound
	}
	delete(s.Stores, id)
	return nil
}

// CountByOwner reports how many stores the owner holds.
func (s *StoreRepositoryStub) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var n int64
	for _, store := range s.Stores {
		if store.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

// Count reports the total number of stores.
func (s *StoreRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Stores)), nil
}

type ratingKey struct {
	UserID  int64
	StoreID int64
}

// RatingRepositoryStub enforces the one-rating-per-pair invariant
// in-memory, mirroring the unique-constraint behaviour of the SQL
// implementation.
type RatingRepositoryStub struct {
	Ratings map[ratingKey]*model.Rating
	// KnownStores guards the foreign key: upserts referencing other
	// store ids fail with ErrNotFound. Empty map disables the check.
	KnownStores map[int64]bool
	Raters      map[int64]model.OwnerInfo
	StoreInfo   map[int64]model.Store
	Next        int64
	Err         error
}

// NewRatingRepositoryStub constructs stub ledger with initialized maps.
func NewRatingRepositoryStub() *RatingRepositoryStub {
	return &RatingRepositoryStub{
		Ratings:     make(map[ratingKey]*model.Rating),
		KnownStores: make(map[int64]bool),
		Raters:      make(map[int64]model.OwnerInfo),
		StoreInfo:   make(map[int64]model.Store),
		Next:        1,
	}
}

// Upsert creates or overwrites the rating for the (user, store) pair.
func (s *RatingRepositoryStub) Upsert(ctx context.Context, userID, storeID int64, value int) (*model.Rating, bool, error) {
	if s.Err != nil {
		return nil, false, s.Err
	}
	if len(s.KnownStores) > 0 && !s.KnownStores[storeID] {
		return nil, false, domainErrors.ErrNotFound
	}
	key := ratingKey{UserID: userID, StoreID: storeID}
	if existing, ok := s.Ratings[key]; ok {
		existing.Value = value
		existing.UpdatedAt = time.Now()
		copied := *existing
		return &copied, false, nil
	}
	rating := &model.Rating{
		ID:        s.Next,
		UserID:    userID,
		StoreID:   storeID,
		Value:     value,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.Next++
	s.Ratings[key] = rating
	copied := *rating
	return &copied, true, nil
}

// GetByUserAndStore fetches the rating for the pair or reports not found.
func (s *RatingRepositoryStub) GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.Rating, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if rating, ok := s.Ratings[ratingKey{UserID: userID, StoreID: storeID}]; ok {
		copied := *rating
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *RatingRepositoryStub) orderedRatings() []*model.Rating {
	ratings := make([]*model.Rating, 0, len(s.Ratings))
	for _, r := range s.Ratings {
		ratings = append(ratings, r)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings
}

// ListByStore returns ratings for the store joined with rater identity.
func (s *RatingRepositoryStub) ListByStore(ctx context.Context, storeID int64) ([]model.RatingWithRater, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.RatingWithRater
	for _, r := range s.orderedRatings() {
		if r.StoreID != storeID {
			continue
		}
		rater := s.Raters[r.UserID]
		result = append(result, model.RatingWithRater{Rating: *r, RaterName: rater.Name, RaterEmail: rater.Email})
	}
	return result, nil
}

// ListByUser returns the user's ratings joined with store info.
func (s *RatingRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.RatingWithStore, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.RatingWithStore
	for _, r := range s.orderedRatings() {
		if r.UserID != userID {
			continue
		}
		store := s.StoreInfo[r.StoreID]
		result = append(result, model.RatingWithStore{Rating: *r, StoreName: store.Name, StoreAddress: store.Address})
	}
	return result, nil
}

// AggregateForStore recomputes mean and count from the stored ratings.
func (s *RatingRepositoryStub) AggregateForStore(ctx context.Context, storeID int64) (model.StoreAggregate, error) {
	if s.Err != nil {
		return model.StoreAggregate{}, s.Err
	}
	var sum, count int
	for _, r := range s.Ratings {
		if r.StoreID == storeID {
			sum += r.Value
			count++
		}
	}
	if count == 0 {
		return model.StoreAggregate{}, nil
	}
	avg := float64(sum) / float64(count)
	return model.StoreAggregate{Average: &avg, Count: count}, nil
}

// AggregatesForStores recomputes aggregates for the given stores.
func (s *RatingRepositoryStub) AggregatesForStores(ctx context.Context, storeIDs []int64) (map[int64]model.StoreAggregate, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make(map[int64]model.StoreAggregate, len(storeIDs))
	for _, id := range storeIDs {
		agg, err := s.AggregateForStore(ctx, id)
		if err != nil {
			return nil, err
		}
		if agg.Count > 0 {
			result[id] = agg
		}
	}
	return result, nil
}

// ValuesByUser returns the user's rating values keyed by store.
func (s *RatingRepositoryStub) ValuesByUser(ctx context.Context, userID int64) (map[int64]int, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make(map[int64]int)
	for key, r := range s.Ratings {
		if key.UserID == userID {
			result[key.StoreID] = r.Value
		}
	}
	return result, nil
}

// Count reports the total number of rating rows.
func (s *RatingRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Ratings)), nil
}
