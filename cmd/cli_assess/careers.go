package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "List the career catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		listCareers(cmd)
	},
}

func init() {
	rootCmd.AddCommand(careersCmd)

	careersCmd.Flags().StringP("category", "c", "", "only careers of this category")
	careersCmd.Flags().StringP("search", "s", "", "comma separated keywords matched against title, description and skills")
}

func listCareers(cmd *cobra.Command) {
	config, err := getConfig()
	if err != nil {
		log.Fatalf("getting a config: %s", err)
	}
	cat, err := loadCatalog(config)
	if err != nil {
		log.Fatalf("loading catalog: %s", err)
	}

	category, _ := cmd.Flags().GetString("category")
	search, _ := cmd.Flags().GetString("search")
	var keywords []string
	for _, kw := range strings.Split(search, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	careers := cat.Search(category, keywords)

	if viper.GetBool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(careers); err != nil {
			log.Fatalf("encoding careers: %s", err)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tOUTLOOK")
	for _, c := range careers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Category, c.OutlookBucket())
	}
	w.Flush()
}
