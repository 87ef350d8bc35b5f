// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The bonsai-go Authors

// Command bonsai submits a zkVM workload to the Bonsai proving service and
// waits for the proof.
//
// It uploads the program image and input, creates a proving session, polls
// it to completion (interactively with -watch, otherwise a plain poll loop),
// and writes the resulting receipt to disk. With -snark the completed
// session is additionally wrapped into a SNARK.
//
// Connection settings come from the environment: BONSAI_API_URL,
// BONSAI_API_KEY and optionally BONSAI_TIMEOUT_MS.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zkworks/bonsai-go/bonsai"
	"github.com/zkworks/bonsai-go/internal/logger"
	"github.com/zkworks/bonsai-go/internal/watch"
	"github.com/zkworks/bonsai-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var (
		imagePath    string
		imageID      string
		inputHex     string
		inputFile    string
		assumption   string
		executeOnly  bool
		snarkWrap    bool
		watchSession bool
		pollInterval time.Duration
		outPath      string
		risc0Version string
	)

	flag.StringVar(&imagePath, "image", "", "Path to the program image (ELF)")
	flag.StringVar(&imageID, "image-id", "", "Content-addressed image identifier")
	flag.StringVar(&inputHex, "input", "", "Execution input as a hex string")
	flag.StringVar(&inputFile, "input-file", "", "File containing the hex-encoded execution input")
	flag.StringVar(&assumption, "assumption", "", "Receipt identifier the execution assumes proven")
	flag.BoolVar(&executeOnly, "execute-only", false, "Execute without proving; fetch only the journal")
	flag.BoolVar(&snarkWrap, "snark", false, "Wrap the completed session into a SNARK")
	flag.BoolVar(&watchSession, "watch", false, "Watch the session interactively")
	flag.DurationVar(&pollInterval, "poll", 15*time.Second, "Status poll interval")
	flag.StringVar(&outPath, "out", "receipt.bin", "Output path for the downloaded artifact")
	flag.StringVar(&risc0Version, "risc0-version", "3.0.0", "Protocol version sent as x-risc0-version")
	flag.Parse()

	log := logger.NewLogger("bonsai-cli")

	client, err := bonsai.NewFromEnv(risc0Version, bonsai.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving client configuration")
	}

	if imageID == "" {
		log.Fatal().Msg("-image-id is required")
	}

	ctx := context.Background()

	if imagePath != "" {
		image, err := os.ReadFile(imagePath)
		if err != nil {
			log.Fatal().Err(err).Msg("read image file")
		}
		exists, err := client.UploadImage(ctx, imageID, image)
		if err != nil {
			log.Fatal().Err(err).Msg("upload image")
		}
		log.Info().Str("image_id", imageID).Bool("already_stored", exists).Msg("image ready")
	}

	if inputFile != "" {
		inputHex, err = readInputHex(inputFile)
		if err != nil {
			log.Fatal().Err(err).Msg("read input file")
		}
	}
	inputID, err := client.UploadInput(ctx, inputHex)
	if err != nil {
		log.Fatal().Err(err).Msg("upload input")
	}
	log.Info().Str("input_id", inputID).Msg("input uploaded")

	var assumptions []string
	if assumption != "" {
		assumptions = []string{assumption}
	}

	session, err := client.CreateSession(ctx, imageID, inputID, assumptions, executeOnly)
	if err != nil {
		log.Fatal().Err(err).Msg("create session")
	}
	log.Info().Str("session", session.ID).Msg("session created")

	status, err := awaitSession(ctx, session, watchSession, pollInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("poll session")
	}
	if status.Status != models.StatusSucceeded {
		log.Fatal().Str("status", status.Status).Str("error_msg", status.ErrorMsg).Msg("session did not succeed")
	}

	if executeOnly {
		journal, err := session.ExecOnlyJournal(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("fetch journal")
		}
		writeArtifact(outPath, journal, log)
		return
	}

	receipt, err := client.ReceiptDownload(ctx, session)
	if err != nil {
		log.Fatal().Err(err).Msg("download receipt")
	}
	writeArtifact(outPath, receipt, log)

	if snarkWrap {
		runSnark(ctx, client, session.ID, pollInterval, outPath, log)
	}
}

// awaitSession blocks until the session reaches a terminal state, either
// through the interactive watch screen or a plain poll-and-sleep loop. The
// poll interval is a CLI choice; the SDK itself enforces none.
func awaitSession(ctx context.Context, session *bonsai.Session, interactive bool, interval time.Duration, log *logger.Logger) (models.SessionStatus, error) {
	if interactive {
		final, err := tea.NewProgram(watch.New(session, interval)).Run()
		if err != nil {
			return models.SessionStatus{}, err
		}
		m := final.(watch.Model)
		if m.Err() != nil {
			return models.SessionStatus{}, m.Err()
		}
		if m.Aborted() {
			log.Info().Str("session", session.ID).Msg("detached; session keeps running server-side")
			os.Exit(0)
		}
		return m.Status(), nil
	}

	for {
		status, err := session.Status(ctx)
		if err != nil {
			return models.SessionStatus{}, err
		}
		if status.Done() {
			return status, nil
		}
		log.Info().
			Str("session", session.ID).
			Str("state", status.State).
			Float64("elapsed", status.ElapsedTime).
			Msg("session running")
		time.Sleep(interval)
	}
}

func runSnark(ctx context.Context, client *bonsai.Client, sessionID string, interval time.Duration, outPath string, log *logger.Logger) {
	snark, err := client.CreateSnark(ctx, sessionID)
	if err != nil {
		log.Fatal().Err(err).Msg("create snark")
	}
	log = log.WithField("snark", snark.ID)
	log.Info().Msg("snark job created")

	for {
		status, err := snark.Status(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("poll snark")
		}
		if !status.Done() {
			time.Sleep(interval)
			continue
		}
		if status.Status != models.StatusSucceeded {
			log.Fatal().Str("status", status.Status).Str("error_msg", status.ErrorMsg).Msg("snark job did not succeed")
		}
		proof, err := client.Download(ctx, status.Output)
		if err != nil {
			log.Fatal().Err(err).Msg("download snark proof")
		}
		writeArtifact(outPath+".snark", proof, log)
		return
	}
}

// readInputHex loads a hex-encoded input from a file, trimming surrounding
// whitespace so a trailing newline does not break the hex decode.
func readInputHex(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func writeArtifact(path string, data []byte, log *logger.Logger) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("write artifact")
	}
	log.Info().Str("path", path).Int("bytes", len(data)).Msg("artifact written")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
