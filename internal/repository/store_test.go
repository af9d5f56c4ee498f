package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func clock(ts ...time.Time) StoreOption {
	i := 0
	return WithClock(func() time.Time {
		t := ts[min(i, len(ts)-1)]
		i++
		return t
	})
}

var menuColumns = []string{
	"id", "name", "price", "description", "image", "rating",
	"is_available", "category", "duration", "created_at", "updated_at",
}

func menuRow(rows *sqlmock.Rows, id int64, name string, available bool) *sqlmock.Rows {
	return rows.AddRow(id, name, "$12.99", "Beef patty", "burger.jpg", 0.0, available, "Burgers", 15, fixedNow, fixedNow)
}

func TestStore_CreateAssignsIDAndTimestamps(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMenuRepository(db, clock(fixedNow))

	insert := "INSERT INTO food (name, price, description, image, rating, is_available, category, duration, created_at, updated_at) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id"
	mock.ExpectQuery(regexp.QuoteMeta(insert)).
		WithArgs("Classic Burger", "$12.99", "Beef patty", "burger.jpg", 0.0, true, "Burgers", 15, fixedNow, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	item := &domain.MenuItem{
		Name: "Classic Burger", Price: "$12.99", Description: "Beef patty", Image: "burger.jpg",
		IsAvailable: true, Category: "Burgers", Duration: 15,
	}
	require.NoError(t, repo.Create(context.Background(), item))

	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, fixedNow, item.CreatedAt)
	assert.Equal(t, fixedNow, item.UpdatedAt)
}

func TestStore_GetMissingIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM food WHERE id = $1 ORDER BY id ASC LIMIT 1")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	item, err := repo.Get(context.Background(), 42)

	assert.Nil(t, item)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "menu item not found")
}

func TestStore_GetScansRecord(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMenuRepository(db)

	query := "SELECT id, name, price, description, image, rating, is_available, category, duration, created_at, updated_at " +
		"FROM food WHERE id = $1 ORDER BY id ASC LIMIT 1"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1)).
		WillReturnRows(menuRow(sqlmock.NewRows(menuColumns), 1, "Classic Burger", true))

	item, err := repo.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Classic Burger", item.Name)
	assert.Equal(t, 15, item.Duration)
	assert.True(t, item.IsAvailable)
}

func TestStore_UpdateMissingIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db, clock(fixedNow))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET content = $1, rating = $2")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Comment{Model: domain.Model{ID: 9}, Content: "x", Rating: 5, AuthorName: "a"})

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_ModifyRefreshesUpdatedAt(t *testing.T) {
	db, mock := setupMockDB(t)
	later := fixedNow.Add(time.Hour)
	repo := NewMenuRepository(db, clock(later))

	mock.ExpectQuery(regexp.QuoteMeta("FROM food WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(menuRow(sqlmock.NewRows(menuColumns), 1, "Classic Burger", true))
	update := "UPDATE food SET name = $1, price = $2, description = $3, image = $4, rating = $5, is_available = $6, " +
		"category = $7, duration = $8, created_at = $9, updated_at = $10 WHERE id = $11"
	mock.ExpectExec(regexp.QuoteMeta(update)).
		WithArgs("Classic Burger", "$12.99", "Beef patty", "burger.jpg", 0.0, false, "Burgers", 15, fixedNow, later, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item, err := repo.Modify(context.Background(), 1, func(m *domain.MenuItem) error {
		m.IsAvailable = false
		return nil
	})

	require.NoError(t, err)
	assert.False(t, item.IsAvailable)
	assert.Equal(t, fixedNow, item.CreatedAt)
	assert.Equal(t, later, item.UpdatedAt)
}

func TestStore_ModifyStopsOnMutateError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMenuRepository(db)
	boom := errors.New("rejected")

	mock.ExpectQuery(regexp.QuoteMeta("FROM food WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(menuRow(sqlmock.NewRows(menuColumns), 1, "Classic Burger", true))

	_, err := repo.Modify(context.Background(), 1, func(*domain.MenuItem) error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestStore_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFooterRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM footer WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM footer WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrNotFound)
}

func TestStore_StorageErrorsAreWrapped(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStoryRepository(db)
	connErr := errors.New("connection refused")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, story, created_at, updated_at FROM about_us ORDER BY id ASC")).
		WillReturnError(connErr)

	_, err := repo.List(context.Background())

	assert.ErrorIs(t, err, connErr)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestMenuRepository_FindCombinesFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMenuRepository(db)
	category, available := "Burgers", true

	rows := sqlmock.NewRows(menuColumns)
	menuRow(rows, 1, "Classic Burger", true)
	menuRow(rows, 2, "Cheese Burger", true)
	mock.ExpectQuery(regexp.QuoteMeta("FROM food WHERE category = $1 AND is_available = $2 ORDER BY id ASC")).
		WithArgs("Burgers", true).
		WillReturnRows(rows)

	items, err := repo.Find(context.Background(), MenuFilter{Category: &category, Available: &available})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Cheese Burger", items[1].Name)
}

func TestMenuRepository_FindWithoutFilterListsAll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM food ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows(menuColumns))

	items, err := repo.Find(context.Background(), MenuFilter{})

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFAQRepository_ListActiveOrdersByDisplayOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFAQRepository(db)

	rows := sqlmock.NewRows([]string{"id", "question", "answer", "sort_order", "is_active", "created_at", "updated_at"}).
		AddRow(int64(2), "Open on Sunday?", "Yes", 0, true, fixedNow, fixedNow).
		AddRow(int64(1), "Vegan options?", "Yes", 1, true, fixedNow, fixedNow)
	mock.ExpectQuery(regexp.QuoteMeta("FROM faq WHERE is_active = $1 ORDER BY sort_order ASC, id ASC")).
		WithArgs(true).
		WillReturnRows(rows)

	faqs, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, faqs, 2)
	assert.Equal(t, 0, faqs[0].Order)
}

func TestOrderRepository_NewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)
	status := domain.OrderPending

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE status = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows(nil))

	_, err := repo.Find(context.Background(), OrderFilter{Status: &status})
	require.NoError(t, err)
}

func TestOrderRepository_ScansItemsAndMoney(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	columns := append([]string{"id"}, orderSchema.Columns...)
	rows := sqlmock.NewRows(columns).AddRow(
		int64(5), "ORD-1705314600000-042", "Ada", "555-0100", nil, "delivery", "preparing",
		[]byte(`[{"menuItemId":1,"name":"Classic Burger","price":12.99,"quantity":2}]`),
		"25.98", "3.00", "2.08", "31.06",
		nil, "1 Main St", nil, fixedNow, fixedNow,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE order_number = $1")).
		WithArgs("ORD-1705314600000-042").
		WillReturnRows(rows)

	order, err := repo.FindByOrderNumber(context.Background(), "ORD-1705314600000-042")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderDelivery, order.OrderType)
	assert.Equal(t, domain.OrderPreparing, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("31.06")))
	assert.Nil(t, order.CustomerEmail)
	require.NotNil(t, order.DeliveryAddress)
	assert.Equal(t, "1 Main St", *order.DeliveryAddress)
}

func TestOrderRepository_DuplicateOrderNumber(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &domain.Order{OrderNumber: "ORD-1-001", Items: domain.OrderItems{}})

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCartRepository_ClearSession(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart WHERE session_id = $1")).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ClearSession(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestReservationRepository_FindByDate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReservationRepository(db)
	date, err := domain.ParseDate("2024-02-14")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservation WHERE date = $1 ORDER BY id ASC")).
		WithArgs("2024-02-14").
		WillReturnRows(sqlmock.NewRows(nil))

	_, err = repo.FindByDate(context.Background(), date)
	require.NoError(t, err)
}

func TestNewStore_RejectsMismatchedSchema(t *testing.T) {
	broken := storySchema
	broken.Columns = []string{"story"}

	assert.Panics(t, func() { NewStore(nil, broken) })
}
