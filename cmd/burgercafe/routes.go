package main

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/config"
	"github.com/KianJanloo/burger-cafe-back/internal/server"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List every registered route",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Routes are registered without touching the database.
		srv, err := server.NewServer(config.Load(), zap.NewNop(), nil)
		if err != nil {
			return err
		}
		return printRoutes(cmd.OutOrStdout(), srv.Routes())
	},
}

type routeRow struct {
	method, path string
}

func printRoutes(out io.Writer, routes chi.Routes) error {
	var rows []routeRow
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route != "/" {
			route = strings.TrimSuffix(route, "/")
		}
		rows = append(rows, routeRow{method: method, path: route})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk routes: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].path != rows[j].path {
			return rows[i].path < rows[j].path
		}
		return rows[i].method < rows[j].method
	})

	table := tablewriter.NewWriter(out)
	table.Header("Method", "Path")
	for _, row := range rows {
		if err := table.Append([]string{row.method, row.path}); err != nil {
			return err
		}
	}
	return table.Render()
}
