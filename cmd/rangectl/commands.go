package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"datarange/bounds"
	"datarange/sample"
	"datarange/sample/options"
	"datarange/sample/postgres"
)

// parseOpt treats "-" as an absent range
func parseOpt(s string) (bounds.Opt, error) {
	if s == "-" {
		return bounds.None(), nil
	}
	r, err := bounds.Parse(s)
	if err != nil {
		return bounds.None(), err
	}
	return bounds.Some(r), nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", name)
	}
	return v, nil
}

func (c *cli) println(cmd *cobra.Command, v interface{}) {
	fmt.Fprintln(cmd.OutOrStdout(), v)
}

func (c *cli) lengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "length RANGE",
		Short: "Print upper - lower",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bounds.Parse(args[0])
			if err != nil {
				return err
			}
			c.println(cmd, r.Length())
			return nil
		},
	}
}

func (c *cli) centralCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "central RANGE",
		Short: "Print the central value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bounds.Parse(args[0])
			if err != nil {
				return err
			}
			c.println(cmd, r.CentralValue())
			return nil
		},
	}
}

func (c *cli) containsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains RANGE VALUE",
		Short: "Report whether VALUE lies within RANGE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bounds.Parse(args[0])
			if err != nil {
				return err
			}
			v, err := parseFloat("value", args[1])
			if err != nil {
				return err
			}
			c.println(cmd, r.Contains(v))
			return nil
		},
	}
}

func (c *cli) intersectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersects RANGE LOW HIGH",
		Short: "Report whether [LOW, HIGH] overlaps RANGE",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bounds.Parse(args[0])
			if err != nil {
				return err
			}
			low, err := parseFloat("low", args[1])
			if err != nil {
				return err
			}
			high, err := parseFloat("high", args[2])
			if err != nil {
				return err
			}
			c.println(cmd, r.Intersects(low, high))
			return nil
		},
	}
}

func (c *cli) constrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constrain RANGE VALUE",
		Short: "Clamp VALUE into RANGE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bounds.Parse(args[0])
			if err != nil {
				return err
			}
			v, err := parseFloat("value", args[1])
			if err != nil {
				return err
			}
			c.println(cmd, r.Constrain(v))
			return nil
		},
	}
}

func (c *cli) shiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift RANGE DELTA",
		Short: "Move both bounds of RANGE by DELTA",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseOpt(args[0])
			if err != nil {
				return err
			}
			delta, err := parseFloat("delta", args[1])
			if err != nil {
				return err
			}

			allow := c.v.GetBool("allow-zero-crossing")
			slog.Debug("Shifting", "range", r, "delta", delta, "allowZeroCrossing", allow)

			shifted, err := bounds.ShiftCrossing(r, delta, allow)
			if err != nil {
				return err
			}
			c.println(cmd, shifted)
			return nil
		},
	}
	cmd.Flags().Bool("allow-zero-crossing", true, "allow bounds to change sign")
	return cmd
}

func (c *cli) expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand RANGE LOWER_MARGIN UPPER_MARGIN",
		Short: "Widen RANGE by margins relative to its length",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseOpt(args[0])
			if err != nil {
				return err
			}
			lower, err := parseFloat("lower margin", args[1])
			if err != nil {
				return err
			}
			upper, err := parseFloat("upper margin", args[2])
			if err != nil {
				return err
			}

			expanded, err := bounds.Expand(r, lower, upper)
			if err != nil {
				return err
			}
			c.println(cmd, expanded)
			return nil
		},
	}
}

func (c *cli) includeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "include RANGE VALUE",
		Short: "Print the smallest range holding RANGE and VALUE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseOpt(args[0])
			if err != nil {
				return err
			}
			v, err := parseFloat("value", args[1])
			if err != nil {
				return err
			}
			c.println(cmd, bounds.ExpandToInclude(r, v))
			return nil
		},
	}
}

func (c *cli) combineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine RANGE RANGE",
		Short: "Print the smallest range holding both ranges",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOpt(args[0])
			if err != nil {
				return err
			}
			b, err := parseOpt(args[1])
			if err != nil {
				return err
			}

			if c.v.GetBool("ignore-nan") {
				c.println(cmd, bounds.CombineIgnoringNaN(a, b))
				return nil
			}
			c.println(cmd, bounds.Combine(a, b))
			return nil
		},
	}
	cmd.Flags().Bool("ignore-nan", false, "ignore NaN bounds")
	return cmd
}

func (c *cli) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale RANGE FACTOR",
		Short: "Multiply both bounds by a non-negative FACTOR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseOpt(args[0])
			if err != nil {
				return err
			}
			factor, err := parseFloat("factor", args[1])
			if err != nil {
				return err
			}

			scaled, err := bounds.Scale(r, factor)
			if err != nil {
				return err
			}
			c.println(cmd, scaled)
			return nil
		},
	}
}

func (c *cli) extentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extent",
		Short: "Print the range of stored sample values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.sampleOptions()
			if err != nil {
				return err
			}

			db, err := postgres.Connect(&postgres.Config{
				Host:         c.v.GetString("postgres-host"),
				Port:         c.v.GetInt("postgres-port"),
				User:         c.v.GetString("postgres-user"),
				Password:     c.v.GetString("postgres-password"),
				DatabaseName: c.v.GetString("postgres-db-name"),
			})
			if err != nil {
				return err
			}
			defer db.Close()

			repo, err := sample.NewPostgresRepo(db)
			if err != nil {
				return err
			}

			extent, err := repo.Extent(opts)
			if err != nil {
				return err
			}
			c.println(cmd, extent)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringSlice("series", nil, "only samples of these series IDs")
	fs.String("within", "", "only samples with a value in this range")
	fs.String("postgres-host", "localhost", "host to connect to")
	fs.Int("postgres-port", 5432, "port to connect to")
	fs.String("postgres-user", "", "user to sign in as")
	fs.String("postgres-password", "", "password of the user")
	fs.String("postgres-db-name", "", "name of the database")

	return cmd
}

func (c *cli) sampleOptions() (*options.SampleOptions, error) {
	opts := options.NewSampleOptions()

	for _, each := range c.v.GetStringSlice("series") {
		id, err := uuid.Parse(each)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing series id %q", each)
		}
		opts.SeriesIDs = append(opts.SeriesIDs, id)
	}

	if within := c.v.GetString("within"); within != "" {
		r, err := bounds.Parse(within)
		if err != nil {
			return nil, err
		}
		opts.SetValueRange(options.NewFloatRange(r))
	}

	return opts, nil
}
