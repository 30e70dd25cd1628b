package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	statkiterr "github.com/jfandel/statkit/internal/errors"
	"github.com/jfandel/statkit/internal/repositories/statdefs"
	"github.com/jfandel/statkit/internal/repositories/statdefs/mocks"
	mockscheduler "github.com/jfandel/statkit/internal/scheduler/mock"
	"github.com/jfandel/statkit/internal/services/registry"
	"github.com/jfandel/statkit/internal/stats"
	"github.com/jfandel/statkit/internal/telemetry"
)

func newTestService() (registry.Service, *stats.System) {
	sys := stats.NewSystem(mockscheduler.NewManualScheduler(), telemetry.NewRecorder())
	svc := registry.NewService(&registry.ServiceConfig{
		Repository: statdefs.NewInMemory(),
		System:     sys,
	})
	return svc, sys
}

func TestNewService(t *testing.T) {
	t.Run("panics on missing repository", func(t *testing.T) {
		assert.Panics(t, func() {
			registry.NewService(&registry.ServiceConfig{
				System: stats.NewSystem(mockscheduler.NewManualScheduler(), nil),
			})
		})
	})

	t.Run("panics on missing system", func(t *testing.T) {
		assert.Panics(t, func() {
			registry.NewService(&registry.ServiceConfig{
				Repository: statdefs.NewInMemory(),
			})
		})
	})
}

func TestSaveDefinition(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("stores a valid definition", func(t *testing.T) {
		def, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
			Name: "health",
			Kind: statdefs.KindRange,
			Base: 50,
			Min:  0,
			Max:  100,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, def.ID)

		got, err := svc.GetDefinition(ctx, def.ID)
		require.NoError(t, err)
		assert.Equal(t, "health", got.Name)
	})

	t.Run("rejects nil input", func(t *testing.T) {
		_, err := svc.SaveDefinition(ctx, nil)
		assert.True(t, statkiterr.IsInvalidArgument(err))
	})

	t.Run("rejects invalid definitions", func(t *testing.T) {
		_, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
			Kind: statdefs.KindPlain,
		})
		assert.True(t, statkiterr.IsInvalidArgument(err))
	})
}

func TestMaterialize(t *testing.T) {
	ctx := context.Background()

	t.Run("range definition becomes a clamped stat", func(t *testing.T) {
		svc, sys := newTestService()
		def, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
			Name: "health",
			Kind: statdefs.KindRange,
			Base: 50,
			Min:  0,
			Max:  100,
		})
		require.NoError(t, err)

		st, err := svc.Materialize(ctx, def.ID)
		require.NoError(t, err)
		assert.Equal(t, 50.0, st.Value().Amount())

		require.NoError(t, st.Value().SetAmount(500))
		assert.Equal(t, 100.0, st.Value().Amount())

		_, ok := sys.Get("health")
		assert.True(t, ok)
	})

	t.Run("elastic definition carries preset modifiers", func(t *testing.T) {
		svc, _ := newTestService()
		def, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
			Name: "strength",
			Kind: statdefs.KindElastic,
			Base: 10,
			Modifiers: []statdefs.ModifierDef{
				{Amount: 2, Priority: 0, Origin: "racial_bonus"},
				{Amount: 1, Priority: 1, Origin: "blessing"},
			},
		})
		require.NoError(t, err)

		st, err := svc.Materialize(ctx, def.ID)
		require.NoError(t, err)
		assert.Equal(t, 13.0, st.Value().Amount())
		assert.True(t, statkiterr.IsImmutableWrite(st.Value().SetAmount(99)))
	})

	t.Run("constant definition is locked", func(t *testing.T) {
		svc, _ := newTestService()
		def, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
			Name: "level_cap",
			Kind: statdefs.KindConstant,
			Base: 80,
		})
		require.NoError(t, err)

		st, err := svc.Materialize(ctx, def.ID)
		require.NoError(t, err)
		assert.True(t, statkiterr.IsImmutableWrite(st.Value().SetAmount(90)))
	})

	t.Run("duplicate name in system is rejected", func(t *testing.T) {
		svc, sys := newTestService()
		sys.NewStat("health", 1)

		def, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
			Name: "health",
			Kind: statdefs.KindPlain,
			Base: 50,
		})
		require.NoError(t, err)

		_, err = svc.Materialize(ctx, def.ID)
		assert.True(t, statkiterr.IsInvalidArgument(err))
	})

	t.Run("missing definition", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Materialize(ctx, "missing")
		assert.True(t, statkiterr.IsNotFound(err))
	})
}

func TestListAndDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	def, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
		Name: "mana",
		Kind: statdefs.KindPlain,
		Base: 30,
	})
	require.NoError(t, err)

	defs, err := svc.ListDefinitions(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 1)

	require.NoError(t, svc.DeleteDefinition(ctx, def.ID))

	defs, err = svc.ListDefinitions(ctx)
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	sys := stats.NewSystem(mockscheduler.NewManualScheduler(), nil)
	svc := registry.NewService(&registry.ServiceConfig{
		Repository: mockRepo,
		System:     sys,
	})
	ctx := context.Background()

	repoErr := errors.New("storage offline")

	mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(repoErr)
	_, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
		Name: "health",
		Kind: statdefs.KindPlain,
	})
	assert.ErrorIs(t, err, repoErr)

	mockRepo.EXPECT().Get(ctx, "def-1").Return(nil, repoErr)
	_, err = svc.Materialize(ctx, "def-1")
	assert.ErrorIs(t, err, repoErr)
}
