/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/docker/go-units"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"d7y.io/fraudtrainer/cmd/dependency"
	logger "d7y.io/fraudtrainer/internal/dflog"
	"d7y.io/fraudtrainer/pkg/dfpath"
	"d7y.io/fraudtrainer/trainer"
	"d7y.io/fraudtrainer/trainer/config"
	"d7y.io/fraudtrainer/trainer/training"
	"d7y.io/fraudtrainer/version"
)

var (
	cfg *config.Config
)

// fraudtrainerExample shows examples in fraudtrainer command.
var fraudtrainerExample = `
$ fraudtrainer --data data/creditcard_clean.csv --model decision_tree --name "Decision Tree"
$ MLFLOW_TRACKING_URI=http://127.0.0.1:5000 fraudtrainer --config fraudtrainer.yaml --console
`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fraudtrainer",
	Short: "the trainer of credit card fraud classifiers",
	Long: `fraudtrainer splits a cleaned credit card transaction dataset, fits a fraud classifier,
scores it on the held out partition and logs parameters, metrics, plots and the model to a tracking backend.`,
	Example:           fraudtrainerExample,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Convert config.
		if err := cfg.Convert(); err != nil {
			return err
		}

		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize dfpath.
		d, err := initDfpath(cfg)
		if err != nil {
			return err
		}

		// Initialize logger.
		rotateConfig := logger.LogRotateConfig{
			MaxSize:    cfg.Server.LogMaxSize,
			MaxAge:     cfg.Server.LogMaxAge,
			MaxBackups: cfg.Server.LogMaxBackups,
		}
		if err := logger.InitTrainer(cfg.Verbose, cfg.Console, d.LogDir(), rotateConfig); err != nil {
			return fmt.Errorf("init trainer logger: %w", err)
		}

		return runTrainer(context.Background(), d)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default trainer config.
	cfg = config.New()

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)

	// Add training flags.
	flags := rootCmd.Flags()
	flags.String("data", cfg.Training.DatasetPath, "path of the cleaned dataset")
	flags.String("model", cfg.Training.Model.Kind, "kind of model, one of logistic_regression, decision_tree and dummy")
	flags.String("name", cfg.Training.Model.Name, "display name of model")
	flags.String("experiment", cfg.Tracking.ExperimentName, "name of the tracking experiment")
	flags.Float64("test-size", cfg.Training.TestSize, "fraction of rows held out for validation")
	flags.Int64("random-state", cfg.Training.RandomState, "seed of the split and the models")
	flags.Bool("metrics", cfg.Metrics.Enable, "write job metrics to a prometheus textfile")

	for key, flag := range map[string]string{
		"training.datasetPath":    "data",
		"training.model.kind":     "model",
		"training.model.name":     "name",
		"tracking.experimentName": "experiment",
		"training.testSize":       "test-size",
		"training.randomState":    "random-state",
		"metrics.enable":          "metrics",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Errorf("bind flag %s: %w", flag, err))
		}
	}

	// Bind environments of the hosting platform.
	for key, env := range map[string]string{
		"server.workDir":    "DOMINO_WORKING_DIR",
		"project.name":      "DOMINO_PROJECT_NAME",
		"tracking.uri":      "MLFLOW_TRACKING_URI",
		"tracking.token":    "MLFLOW_TRACKING_TOKEN",
		"tracking.username": "MLFLOW_TRACKING_USERNAME",
		"tracking.password": "MLFLOW_TRACKING_PASSWORD",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			panic(fmt.Errorf("bind env %s: %w", env, err))
		}
	}
}

func initDfpath(cfg *config.Config) (dfpath.Dfpath, error) {
	options := []dfpath.Option{
		dfpath.WithWorkHome(cfg.Server.WorkDir),
		dfpath.WithProject(cfg.Project.Name),
	}

	if cfg.Server.LogDir != "" {
		options = append(options, dfpath.WithLogDir(cfg.Server.LogDir))
	}

	if cfg.Server.DataDir != "" {
		options = append(options, dfpath.WithDataDir(cfg.Server.DataDir))
	}

	if cfg.Server.ArtifactDir != "" {
		options = append(options, dfpath.WithArtifactDir(cfg.Server.ArtifactDir))
	}

	return dfpath.New(options...)
}

func runTrainer(ctx context.Context, d dfpath.Dfpath) error {
	logger.Infof("version:\n%s", version.Version())

	stop := dependency.InitMonitor(cfg.Verbose, cfg.PProfPort)
	defer stop()

	ctx, cancel := dependency.SetupQuitSignalHandler(ctx, func() {
		logger.Warn("training is interrupted")
	})
	defer cancel()

	if info, err := os.Stat(cfg.Training.DatasetPath); err == nil {
		logger.Infof("dataset %s is %s", cfg.Training.DatasetPath, units.HumanSize(float64(info.Size())))
	}

	pb := progressbar.NewOptions(training.StepCount,
		progressbar.OptionSetDescription("training"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	t, err := trainer.New(ctx, cfg, d, training.WithStepHook(func(step string) {
		pb.Describe(step)
		_ = pb.Add(1)
	}))
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := t.Train(ctx)
	_ = pb.Finish()
	if err != nil {
		return err
	}

	return printResult(os.Stdout, result, time.Since(start))
}

func printResult(w io.Writer, result *training.Result, cost time.Duration) error {
	m := result.ToMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Value"})
	for _, k := range keys {
		table.Append([]string{k, m[k]})
	}
	table.Append([]string{"run_id", result.RunID})
	if result.ModelVersion != nil {
		table.Append([]string{"model_version", result.ModelVersion.Version})
	}
	table.Render()

	_, err := fmt.Fprintf(w, "time cost: %s\n", units.HumanDuration(cost))
	return err
}
