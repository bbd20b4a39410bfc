// ritmo-radar extracts rhythm and spacing features from a labeled beatmap
// tree into a feature table, and can optionally train and score a Gaussian
// Naive Bayes classifier on that table.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/RyanBlaney/ritmo-radar/classify"
	"github.com/RyanBlaney/ritmo-radar/dataset"
	"github.com/RyanBlaney/ritmo-radar/features"
	"github.com/RyanBlaney/ritmo-radar/logging"
)

func main() {
	mapsRoot := flag.String("maps", "", "root of the labeled beatmap tree (<root>/<label>/*.osu)")
	outPath := flag.String("out", "output.csv", "feature table destination")
	dbPath := flag.String("db", "", "optional sqlite feature store")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent document workers")
	runClassifier := flag.Bool("classify", false, "train and score a classifier on the emitted table")
	testSize := flag.Float64("test-size", 0.2, "held-out fraction for classifier evaluation")
	seed := flag.Int64("seed", 1, "train/test split seed")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logging.SetLevel(logging.DebugLevel)
	}
	logger := logging.WithFields(logging.Fields{
		"component": "cli",
	})

	if *mapsRoot == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docs, err := dataset.DiscoverDocuments(*mapsRoot)
	if err != nil {
		logger.Fatal(err, "failed to enumerate beatmap documents")
	}

	out, err := os.Create(*outPath)
	if err != nil {
		logger.Fatal(err, "failed to create feature table")
	}
	defer out.Close()

	writer, err := dataset.NewWriter(out)
	if err != nil {
		logger.Fatal(err, "failed to start feature table")
	}

	var store *dataset.Store
	var runID string
	if *dbPath != "" {
		store, err = dataset.NewStore(*dbPath)
		if err != nil {
			logger.Fatal(err, "failed to open feature store")
		}
		defer store.Close()

		runID, err = store.BeginRun(ctx)
		if err != nil {
			logger.Fatal(err, "failed to register extraction run")
		}
	}

	runner := dataset.NewRunner(*workers, features.DefaultConfig())
	results := runner.Run(ctx, docs)

	written := 0
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			continue
		}
		if err := writer.Write(result.Record); err != nil {
			logger.Fatal(err, "failed to append feature record")
		}
		if store != nil {
			if err := store.SaveRecord(ctx, runID, result.Doc.Path, result.Record); err != nil {
				logger.Fatal(err, "failed to store feature record")
			}
		}
		written++
	}
	if err := writer.Flush(); err != nil {
		logger.Fatal(err, "failed to flush feature table")
	}

	logger.Info("extraction complete", logging.Fields{
		"documents": len(docs),
		"written":   written,
		"failed":    failed,
		"table":     *outPath,
	})

	if *runClassifier {
		if err := classifyTable(*outPath, *testSize, *seed, logger); err != nil {
			logger.Fatal(err, "classification failed")
		}
	}
}

// classifyTable reads the emitted table back and runs the evaluation
// protocol the table is built for: scale on the training split, fit
// Gaussian Naive Bayes, score the held-out split.
func classifyTable(path string, testSize float64, seed int64, logger logging.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, labels, err := classify.LoadTable(f)
	if err != nil {
		return err
	}

	trainRows, testRows, trainLabels, testLabels, err := classify.TrainTestSplit(rows, labels, testSize, seed)
	if err != nil {
		return err
	}

	scaler := &classify.StandardScaler{}
	scaledTrain, err := scaler.FitTransform(trainRows)
	if err != nil {
		return err
	}
	scaledTest := scaler.Transform(testRows)

	model := classify.NewGaussianNB()
	if err := model.Fit(scaledTrain, trainLabels); err != nil {
		return err
	}

	predicted, err := model.Predict(scaledTest)
	if err != nil {
		return err
	}

	accuracy, err := classify.AccuracyScore(testLabels, predicted)
	if err != nil {
		return err
	}

	logger.Info("classification complete", logging.Fields{
		"train_rows": len(trainRows),
		"test_rows":  len(testRows),
		"accuracy":   accuracy,
	})
	return nil
}
