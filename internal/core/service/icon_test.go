package service

import (
	"context"
	"errors"
	"image"
	"testing"

	"iconsmith/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockRenderer struct {
	err   error
	Specs []domain.IconSpec
}

func (m *MockRenderer) Render(_ context.Context, spec domain.IconSpec) (image.Image, error) {
	m.Specs = append(m.Specs, spec)
	if m.err != nil {
		return nil, m.err
	}
	return image.NewRGBA(image.Rect(0, 0, spec.Size, spec.Size)), nil
}

type MockEncoder struct {
	pngErr    error
	icoErr    error
	ICOFrames int
}

func (m *MockEncoder) EncodePNG(_ image.Image) ([]byte, error) {
	if m.pngErr != nil {
		return nil, m.pngErr
	}
	return []byte("png"), nil
}

func (m *MockEncoder) EncodeICO(frames []image.Image) ([]byte, error) {
	m.ICOFrames = len(frames)
	if m.icoErr != nil {
		return nil, m.icoErr
	}
	return []byte("ico"), nil
}

type MockWriter struct {
	dirErr   error
	writeErr error
	Dirs     []string
	Files    []string
}

func (m *MockWriter) EnsureDir(dir string) error {
	m.Dirs = append(m.Dirs, dir)
	return m.dirErr
}

func (m *MockWriter) Write(_, name string, _ []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.Files = append(m.Files, name)
	return nil
}

func defaultSet() domain.IconSet {
	return domain.IconSet{
		Sizes:     []int{16, 48, 128},
		OutputDir: "icons",
		Palette:   domain.DefaultPalette(),
	}
}

func TestGenerateAllSuccessful(t *testing.T) {
	mr := &MockRenderer{}
	me := &MockEncoder{}
	mw := &MockWriter{}

	svc := NewIconService(mr, me, mw)

	err := svc.GenerateAll(context.Background(), defaultSet())
	require.NoError(t, err)

	assert.Equal(t, []string{"icons"}, mw.Dirs)
	assert.Equal(t, []string{"icon16.png", "icon48.png", "icon128.png"}, mw.Files)
	assert.Len(t, mr.Specs, 3)
	assert.Equal(t, 0, me.ICOFrames)
}

func TestGenerateAllWithBundle(t *testing.T) {
	mr := &MockRenderer{}
	me := &MockEncoder{}
	mw := &MockWriter{}

	svc := NewIconService(mr, me, mw)

	set := defaultSet()
	set.BundleName = "favicon.ico"

	err := svc.GenerateAll(context.Background(), set)
	require.NoError(t, err)

	assert.Equal(t, []string{"icon16.png", "icon48.png", "icon128.png", "favicon.ico"}, mw.Files)
	assert.Equal(t, 3, me.ICOFrames)
}

func TestGenerateAllEmptySizes(t *testing.T) {
	mr := &MockRenderer{}
	me := &MockEncoder{}
	mw := &MockWriter{}

	svc := NewIconService(mr, me, mw)

	err := svc.GenerateAll(context.Background(), domain.IconSet{OutputDir: "icons"})
	assert.ErrorIs(t, err, domain.ErrNoSizes)
	assert.Empty(t, mw.Dirs)
}

func TestGenerateAllEnsureDirFailed(t *testing.T) {
	mr := &MockRenderer{}
	me := &MockEncoder{}
	mw := &MockWriter{dirErr: errors.New("mock error")}

	svc := NewIconService(mr, me, mw)

	err := svc.GenerateAll(context.Background(), defaultSet())
	assert.Errorf(t, err, "mock error")
	assert.Empty(t, mr.Specs)
}

func TestGenerateAllRenderFailed(t *testing.T) {
	mr := &MockRenderer{err: errors.New("mock error")}
	me := &MockEncoder{}
	mw := &MockWriter{}

	svc := NewIconService(mr, me, mw)

	err := svc.GenerateAll(context.Background(), defaultSet())
	assert.Errorf(t, err, "mock error")
	assert.Empty(t, mw.Files)
}

func TestGenerateAllEncodeFailed(t *testing.T) {
	mr := &MockRenderer{}
	me := &MockEncoder{pngErr: errors.New("mock error")}
	mw := &MockWriter{}

	svc := NewIconService(mr, me, mw)

	err := svc.GenerateAll(context.Background(), defaultSet())
	assert.Errorf(t, err, "mock error")
	assert.Empty(t, mw.Files)
}

func TestGenerateAllWriteFailed(t *testing.T) {
	mr := &MockRenderer{}
	me := &MockEncoder{}
	mw := &MockWriter{writeErr: errors.New("mock error")}

	svc := NewIconService(mr, me, mw)

	err := svc.GenerateAll(context.Background(), defaultSet())
	assert.Errorf(t, err, "mock error")
	assert.Len(t, mr.Specs, 1)
}

func TestGenerateAllBundleFailed(t *testing.T) {
	mr := &MockRenderer{}
	me := &MockEncoder{icoErr: errors.New("mock error")}
	mw := &MockWriter{}

	svc := NewIconService(mr, me, mw)

	set := defaultSet()
	set.BundleName = "favicon.ico"

	err := svc.GenerateAll(context.Background(), set)
	assert.Errorf(t, err, "mock error")
	assert.Equal(t, []string{"icon16.png", "icon48.png", "icon128.png"}, mw.Files)
}

func TestGenerateAllContextCanceled(t *testing.T) {
	mr := &MockRenderer{}
	me := &MockEncoder{}
	mw := &MockWriter{}

	svc := NewIconService(mr, me, mw)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.GenerateAll(ctx, defaultSet())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, mw.Files)
}
