package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docwalk/host/memdoc"
	"docwalk/state"
	"docwalk/walk"
)

// openDocument loads a fixture file and registers it as a window with the
// service, returning the window id and the document length.
func openDocument(env *state.LocalEnv, cmd *cli.Command) (string, int, error) {
	if cmd.Args().Len() == 0 {
		return "", 0, errors.New("no document given")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many documents", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	path := cmd.Args().Get(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("unable to read document '%s': %w", path, err)
	}
	doc, err := memdoc.Load(data)
	if err != nil {
		return "", 0, fmt.Errorf("unable to load document '%s': %w", path, err)
	}

	id := filepath.Base(path)
	if err := env.Svc.Register(id, memdoc.NewWindow(doc)); err != nil {
		return "", 0, err
	}
	env.Log.Debug("Document loaded", zap.String("path", path), zap.Int("length", doc.Length()))
	return id, doc.Length(), nil
}

func runExtract(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	id, length, err := openDocument(env, cmd)
	if err != nil {
		return err
	}
	defer env.Svc.Unregister(id)

	facets := cmd.StringSlice("facet")
	if len(facets) == 0 {
		facets = env.Cfg.Extract.Facets
	}
	cfg, err := walk.ParseFacets(facets)
	if err != nil {
		return fmt.Errorf("unable to parse facets: %w", err)
	}

	start := cmd.Int("start")
	end := cmd.Int("end")
	if end == 0 {
		end = length
	}

	out, err := env.Svc.GetTextInRange(id, start, end, cfg)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	fmt.Println(out)
	return nil
}

func runExpandLine(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	id, _, err := openDocument(env, cmd)
	if err != nil {
		return err
	}
	defer env.Svc.Unregister(id)

	lineStart, lineEnd, err := env.Svc.ExpandToLine(id, cmd.Int("offset"))
	if err != nil {
		return fmt.Errorf("line expansion failed: %w", err)
	}
	fmt.Printf("line: [%d, %d)\n", lineStart, lineEnd)
	return nil
}

func runMoveLine(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	id, _, err := openDocument(env, cmd)
	if err != nil {
		return err
	}
	defer env.Svc.Unregister(id)

	newOffset, err := env.Svc.MoveByLine(id, cmd.Int("offset"), cmd.Bool("backward"))
	if err != nil {
		return fmt.Errorf("line move failed: %w", err)
	}
	fmt.Printf("offset: %d\n", newOffset)
	return nil
}
