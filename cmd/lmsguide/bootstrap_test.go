package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/speech"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/sqlite"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/cli"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

func TestBootstrap_Ephemeral(t *testing.T) {
	svc, done, err := bootstrap(context.Background(), cli.Options{Ephemeral: true})
	require.NoError(t, err)
	defer done()

	assert.Len(t, svc.Catalog.Topics(), 8)
	assert.False(t, svc.Speech.Supported())
	assert.Nil(t, svc.Watcher)

	_, _, err = svc.Progress.Toggle(context.Background(), domain.TopicUpload, 0)
	require.NoError(t, err)
}

func TestBootstrap_PersistsAcrossRuns(t *testing.T) {
	opts := cli.Options{ConfigDir: t.TempDir(), DataDir: t.TempDir()}
	ctx := context.Background()

	svc, done, err := bootstrap(ctx, opts)
	require.NoError(t, err)
	_, _, err = svc.Progress.Toggle(ctx, domain.TopicReports, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Settings.SetTheme(domain.ThemeLight))
	done()

	svc, done, err = bootstrap(ctx, opts)
	require.NoError(t, err)
	defer done()

	checked, err := svc.Progress.Load(ctx, domain.TopicReports)
	require.NoError(t, err)
	assert.True(t, checked.Contains(1))

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, settings.EffectiveTheme())
	assert.FileExists(t, filepath.Join(opts.DataDir, sqlite.DatabaseFile))
}

func TestBootstrap_WatchesConfiguredCatalog(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("..", "..", "internal", "adapters", "driven", "catalog", "topics.yaml"))
	require.NoError(t, err)
	path := filepath.Join(dir, "topics.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	opts := cli.Options{ConfigDir: t.TempDir(), DataDir: t.TempDir()}
	svc, done, err := bootstrap(context.Background(), opts)
	require.NoError(t, err)
	require.NoError(t, svc.Settings.SetValue("catalog.path", path))
	require.NoError(t, svc.Settings.SetValue("catalog.watch", "true"))
	done()

	svc, done, err = bootstrap(context.Background(), opts)
	require.NoError(t, err)
	defer done()
	assert.NotNil(t, svc.Watcher)
}

func TestOpenSpeech(t *testing.T) {
	r, closer := openSpeech(domain.SpeechSettings{})
	assert.IsType(t, speech.Unsupported{}, r)
	assert.Nil(t, closer)

	r, closer = openSpeech(domain.SpeechSettings{Enabled: true, RecordCommand: "arecord -q -t raw"})
	require.NotNil(t, closer)
	assert.IsType(t, &speech.Cloud{}, r)
	assert.NoError(t, closer())
}
