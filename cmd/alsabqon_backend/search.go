package main

import (
	"encoding/json"
	"strings"

	"github.com/SscSPs/alsabqon_app/internal/adapters/corpus"
	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/SscSPs/alsabqon_app/internal/core/services"
	"github.com/SscSPs/alsabqon_app/internal/dto"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var include string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the scripture corpus and print the hits as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := corpus.Load(a.cfg.QuranDataPath)
			if err != nil {
				return err
			}
			svc := services.NewScriptureService(c)
			hits := svc.Search(cmd.Context(), strings.Join(args, " "), domain.ParseIncludeField(include))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.ToSearchResponse(hits))
		},
	}
	cmd.Flags().StringVar(&include, "include", "", "extra field per hit: tafseer, en or es")
	return cmd
}
