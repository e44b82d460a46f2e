package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/domain/entity"
	"github.com/bnema/pdm/internal/logging"
)

// ResolveStartDirInput holds the input for choosing where the explorer opens.
type ResolveStartDirInput struct {
	Role entity.DaemonRole
	// Override is a directory from the user's settings; it wins when it exists.
	// A leading "~" is expanded and relative values resolve against the working directory.
	Override string
}

// ResolveStartDirOutput is the explorer's starting point.
type ResolveStartDirOutput struct {
	Dir string
	// Preselect is the default config file to highlight, empty when it does not exist.
	Preselect string
}

// ResolveStartDirUseCase picks the explorer directory for a role.
type ResolveStartDirUseCase struct {
	fs    port.FileSystem
	paths port.DefaultPathResolver
}

// NewResolveStartDirUseCase creates a new ResolveStartDirUseCase.
func NewResolveStartDirUseCase(fs port.FileSystem, paths port.DefaultPathResolver) *ResolveStartDirUseCase {
	return &ResolveStartDirUseCase{
		fs:    fs,
		paths: paths,
	}
}

// Execute returns, in order of preference: the override directory, the
// directory of the role's default config file, the working directory.
func (uc *ResolveStartDirUseCase) Execute(ctx context.Context, input ResolveStartDirInput) (*ResolveStartDirOutput, error) {
	log := logging.FromContext(ctx)

	if input.Override != "" {
		if dir, ok := uc.overrideDir(ctx, input.Override); ok {
			return &ResolveStartDirOutput{Dir: dir}, nil
		}
		log.Debug().Str("start_dir", input.Override).Msg("start directory override is not a directory")
	}

	if path, ok := uc.paths.DefaultConfigPath(input.Role); ok {
		dir := filepath.Dir(path)
		if uc.isDir(ctx, dir) {
			out := &ResolveStartDirOutput{Dir: dir}
			if exists, err := uc.fs.Exists(ctx, path); err == nil && exists {
				out.Preselect = path
			}
			log.Debug().Str("role", input.Role.String()).Str("dir", dir).Msg("explorer starts in default directory")
			return out, nil
		}
		log.Debug().Str("role", input.Role.String()).Str("path", path).Msg("default config directory missing")
	}

	wd, err := uc.fs.WorkingDir()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return &ResolveStartDirOutput{Dir: wd}, nil
}

// overrideDir returns the absolute form of the override when it is a directory.
func (uc *ResolveStartDirUseCase) overrideDir(ctx context.Context, override string) (string, bool) {
	dir := uc.paths.ExpandHome(override)
	if !filepath.IsAbs(dir) {
		wd, err := uc.fs.WorkingDir()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(wd, dir)
	}
	dir = filepath.Clean(dir)
	return dir, uc.isDir(ctx, dir)
}

func (uc *ResolveStartDirUseCase) isDir(ctx context.Context, path string) bool {
	ok, err := uc.fs.IsDirectory(ctx, path)
	return err == nil && ok
}
