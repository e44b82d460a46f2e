package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdm/internal/application/port/mocks"
	"github.com/bnema/pdm/internal/application/usecase"
	"github.com/bnema/pdm/internal/domain/entity"
)

func TestResolveStartDirUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("override directory wins", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		paths := mocks.NewMockDefaultPathResolver(t)
		paths.EXPECT().ExpandHome("/srv/conf").Return("/srv/conf")
		fs.EXPECT().IsDirectory(mock.Anything, "/srv/conf").Return(true, nil)

		uc := usecase.NewResolveStartDirUseCase(fs, paths)
		out, err := uc.Execute(ctx, usecase.ResolveStartDirInput{Role: entity.DaemonRoleBitcoin, Override: "/srv/conf"})

		require.NoError(t, err)
		assert.Equal(t, "/srv/conf", out.Dir)
		assert.Empty(t, out.Preselect)
	})

	t.Run("relative override resolves against working dir", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		paths := mocks.NewMockDefaultPathResolver(t)
		paths.EXPECT().ExpandHome(".").Return(".")
		fs.EXPECT().WorkingDir().Return("/work/nodes", nil)
		fs.EXPECT().IsDirectory(mock.Anything, "/work/nodes").Return(true, nil)

		uc := usecase.NewResolveStartDirUseCase(fs, paths)
		out, err := uc.Execute(ctx, usecase.ResolveStartDirInput{Role: entity.DaemonRoleBitcoin, Override: "."})

		require.NoError(t, err)
		assert.Equal(t, "/work/nodes", out.Dir)
	})

	t.Run("home relative override is expanded", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		paths := mocks.NewMockDefaultPathResolver(t)
		paths.EXPECT().ExpandHome("~/confs").Return("/home/u/confs")
		fs.EXPECT().IsDirectory(mock.Anything, "/home/u/confs").Return(true, nil)

		uc := usecase.NewResolveStartDirUseCase(fs, paths)
		out, err := uc.Execute(ctx, usecase.ResolveStartDirInput{Role: entity.DaemonRoleBitcoin, Override: "~/confs"})

		require.NoError(t, err)
		assert.Equal(t, "/home/u/confs", out.Dir)
	})

	t.Run("missing override falls back to default", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		paths := mocks.NewMockDefaultPathResolver(t)
		paths.EXPECT().ExpandHome("/gone").Return("/gone")
		fs.EXPECT().IsDirectory(mock.Anything, "/gone").Return(false, nil)
		paths.EXPECT().DefaultConfigPath(entity.DaemonRoleBitcoin).Return("/home/u/.bitcoin/bitcoin.conf", true)
		fs.EXPECT().IsDirectory(mock.Anything, "/home/u/.bitcoin").Return(true, nil)
		fs.EXPECT().Exists(mock.Anything, "/home/u/.bitcoin/bitcoin.conf").Return(false, nil)

		uc := usecase.NewResolveStartDirUseCase(fs, paths)
		out, err := uc.Execute(ctx, usecase.ResolveStartDirInput{Role: entity.DaemonRoleBitcoin, Override: "/gone"})

		require.NoError(t, err)
		assert.Equal(t, "/home/u/.bitcoin", out.Dir)
		assert.Empty(t, out.Preselect)
	})

	t.Run("default directory with existing file", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		paths := mocks.NewMockDefaultPathResolver(t)
		paths.EXPECT().DefaultConfigPath(entity.DaemonRoleBitcoin).Return("/home/u/.bitcoin/bitcoin.conf", true)
		fs.EXPECT().IsDirectory(mock.Anything, "/home/u/.bitcoin").Return(true, nil)
		fs.EXPECT().Exists(mock.Anything, "/home/u/.bitcoin/bitcoin.conf").Return(true, nil)

		uc := usecase.NewResolveStartDirUseCase(fs, paths)
		out, err := uc.Execute(ctx, usecase.ResolveStartDirInput{Role: entity.DaemonRoleBitcoin})

		require.NoError(t, err)
		assert.Equal(t, "/home/u/.bitcoin", out.Dir)
		assert.Equal(t, "/home/u/.bitcoin/bitcoin.conf", out.Preselect)
	})

	t.Run("missing default directory falls back to working dir", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		paths := mocks.NewMockDefaultPathResolver(t)
		paths.EXPECT().DefaultConfigPath(entity.DaemonRoleP2Pool).Return("/home/u/.p2pool/p2pool.conf", true)
		fs.EXPECT().IsDirectory(mock.Anything, "/home/u/.p2pool").Return(false, nil)
		fs.EXPECT().WorkingDir().Return("/work", nil)

		uc := usecase.NewResolveStartDirUseCase(fs, paths)
		out, err := uc.Execute(ctx, usecase.ResolveStartDirInput{Role: entity.DaemonRoleP2Pool, Override: ""})

		require.NoError(t, err)
		assert.Equal(t, "/work", out.Dir)
	})

	t.Run("no default and no working dir", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		paths := mocks.NewMockDefaultPathResolver(t)
		paths.EXPECT().DefaultConfigPath(entity.DaemonRoleP2Pool).Return("", false)
		fs.EXPECT().WorkingDir().Return("", errors.New("gone"))

		uc := usecase.NewResolveStartDirUseCase(fs, paths)
		_, err := uc.Execute(ctx, usecase.ResolveStartDirInput{Role: entity.DaemonRoleP2Pool})

		assert.ErrorContains(t, err, "get working directory")
	})
}
