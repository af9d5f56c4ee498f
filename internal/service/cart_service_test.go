package service

import (
	"context"
	"testing"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(session string, price string, quantity int) domain.CreateCartLine {
	p := decimal.RequireFromString(price)
	return domain.CreateCartLine{
		SessionID: session,
		FoodID:    ptr(int64(1)),
		FoodName:  "Classic Burger",
		FoodPrice: &p,
		Quantity:  &quantity,
	}
}

func totalHolds(l *domain.CartLine) bool {
	return l.TotalPrice.Equal(l.FoodPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
}

func TestProperty_CartTotalPriceIsPriceTimesQuantity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("totalPrice tracks foodPrice and quantity through create, update and setQuantity", prop.ForAll(
		func(cents, newCents int64, qty, newQty, setQty int) bool {
			svc := NewCartService(newMockCartRepository())
			ctx := context.Background()

			price := decimal.New(cents, -2)
			line, err := svc.Create(ctx, domain.CreateCartLine{
				SessionID: "s", FoodID: ptr(int64(3)), FoodName: "Fries", FoodPrice: &price, Quantity: &qty,
			})
			if err != nil || !totalHolds(line) {
				return false
			}

			newPrice := decimal.New(newCents, -2)
			line, err = svc.Update(ctx, line.ID, domain.UpdateCartLine{FoodPrice: &newPrice})
			if err != nil || !totalHolds(line) {
				return false
			}

			line, err = svc.Update(ctx, line.ID, domain.UpdateCartLine{Quantity: &newQty})
			if err != nil || !totalHolds(line) {
				return false
			}

			line, err = svc.SetQuantity(ctx, line.ID, setQty)
			if err != nil || !totalHolds(line) || line.Quantity != setQty {
				return false
			}

			stored, err := svc.Get(ctx, line.ID)
			return err == nil && totalHolds(stored)
		},
		gen.Int64Range(0, 100000),
		gen.Int64Range(0, 100000),
		gen.IntRange(1, 50),
		gen.IntRange(1, 50),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCartScenario_SessionTotal(t *testing.T) {
	svc := NewCartService(newMockCartRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, cartLine("s1", "12.99", 2))
	require.NoError(t, err)
	_, err = svc.Create(ctx, cartLine("s1", "2.99", 1))
	require.NoError(t, err)
	_, err = svc.Create(ctx, cartLine("s2", "100.00", 1))
	require.NoError(t, err)

	total, err := svc.Total(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("28.97")), "got %s", total)

	empty, err := svc.Total(ctx, "nobody")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestCartService_FindBySessionAndClear(t *testing.T) {
	svc := NewCartService(newMockCartRepository())
	ctx := context.Background()

	for _, s := range []string{"s1", "s2", "s1"} {
		_, err := svc.Create(ctx, cartLine(s, "5.00", 1))
		require.NoError(t, err)
	}

	lines, err := svc.FindBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	removed, err := svc.ClearSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	lines, err = svc.FindBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	others, err := svc.FindBySession(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
