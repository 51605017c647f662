package service_test

import (
	"context"
	"testing"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"
	"github.com/super-sam-code/VyaparTracker/internal/dto"
	"github.com/super-sam-code/VyaparTracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategory(t *testing.T) {
	store := newMemStore()
	svc := service.NewCategoryService(store)
	desc := "Spices, masalas, and whole seeds"

	resp, err := svc.Add(context.Background(), dto.CreateCategoryRequest{
		Name:        "Spices",
		Description: &desc,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Spices", resp.Name)
	require.NotNil(t, resp.Description)
	assert.Equal(t, desc, *resp.Description)
}

func TestAddCategoryDuplicateName(t *testing.T) {
	store := newMemStore()
	svc := service.NewCategoryService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, dto.CreateCategoryRequest{Name: "Dairy"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, dto.CreateCategoryRequest{Name: "Dairy"})
	require.ErrorIs(t, err, apperror.ErrDuplicateKey)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListCategoriesSorted(t *testing.T) {
	store := newMemStore()
	svc := service.NewCategoryService(store)
	ctx := context.Background()

	for _, name := range []string{"Snacks", "Beverages", "Household"} {
		_, err := svc.Add(ctx, dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Beverages", list[0].Name)
	assert.Equal(t, "Household", list[1].Name)
	assert.Equal(t, "Snacks", list[2].Name)
}
