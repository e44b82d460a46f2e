package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdm/internal/application/port/mocks"
	"github.com/bnema/pdm/internal/application/usecase"
	"github.com/bnema/pdm/internal/domain/entity"
)

func sampleSchema() []entity.ConfigSchema {
	return []entity.ConfigSchema{
		{Key: "server", ValueType: entity.ConfigTypeBoolean, Section: "RPC", Description: "Accept JSON-RPC commands", Default: "0"},
		{Key: "rpcport", ValueType: entity.ConfigTypeInteger, Section: "RPC", Description: "RPC port", Default: "8332"},
		{Key: "datadir", ValueType: entity.ConfigTypeString, Section: "Core", Description: "Data directory", Default: ""},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema(entity.DaemonRoleBitcoin).Return(sampleSchema())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Role: entity.DaemonRoleBitcoin})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Len(t, result.Keys, 3)
		assert.Equal(t, "server", result.Keys[0].Key)
		assert.Equal(t, []string{"RPC", "Core"}, result.Sections)
		assert.Equal(t, entity.DaemonRoleBitcoin, result.Role)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("filters by section", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema(entity.DaemonRoleBitcoin).Return(sampleSchema())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{
			Role:    entity.DaemonRoleBitcoin,
			Section: "Core",
		})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "datadir", result.Keys[0].Key)
		assert.Equal(t, []string{"Core"}, result.Sections)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema(entity.DaemonRoleP2Pool).Return([]entity.ConfigSchema{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Role: entity.DaemonRoleP2Pool})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result.Keys)
		assert.Empty(t, result.Sections)
	})
}
