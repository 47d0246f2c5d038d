/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/KriFos1/refelements/refelement"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the tables of one reference element",
	Long: `
Prints subentity counts, types, positions, volume and facet normals of the
reference element selected by dimension and topology id or shape name,

refelements info --dim 3 --shape pyramid `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			dim, _    = cmd.Flags().GetInt("dim")
			id, _     = cmd.Flags().GetUint32("id")
			shape, _  = cmd.Flags().GetString("shape")
			asYaml, _ = cmd.Flags().GetBool("yaml")
			report    = buildReport(selectElement(dim, id, shape))
		)
		if asYaml {
			out, err := yaml.Marshal(report)
			if err != nil {
				panic(err)
			}
			fmt.Print(string(out))
			return
		}
		printReport(report)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Int("dim", 3, "dimension of the reference element")
	infoCmd.Flags().Uint32("id", 0, "topology id, ignored when --shape is given")
	infoCmd.Flags().String("shape", "", "one of simplex, cube, pyramid, prism")
	infoCmd.Flags().Bool("yaml", false, "emit the report as YAML")
}

func selectElement(dim int, id uint32, shape string) *refelement.ReferenceElement {
	c := refelement.Elements(dim)
	switch strings.ToLower(shape) {
	case "":
		return c.ByTopologyID(id)
	case "simplex":
		return c.Simplex()
	case "cube":
		return c.Cube()
	case "pyramid":
		return c.Pyramid()
	case "prism":
		return c.Prism()
	default:
		panic(fmt.Sprintf("unknown shape %q", shape))
	}
}

// ElementReport is the serializable summary of one reference element.
type ElementReport struct {
	Type       string              `json:"type"`
	TopologyID uint32              `json:"topologyId"`
	Dimension  int                 `json:"dimension"`
	Volume     float64             `json:"volume"`
	Sizes      []int               `json:"sizes"`
	Corners    [][]float64         `json:"corners"`
	Normals    [][]float64         `json:"normals,omitempty"`
	SubTypes   map[string][]string `json:"subTypes"`
}

func buildReport(r *refelement.ReferenceElement) (rep ElementReport) {
	var (
		dim = r.Dimension()
	)
	rep = ElementReport{
		Type:       r.Type().String(),
		TopologyID: r.Type().ID(),
		Dimension:  dim,
		Volume:     r.Volume(),
		SubTypes:   make(map[string][]string),
	}
	for c := 0; c <= dim; c++ {
		rep.Sizes = append(rep.Sizes, r.Size(c))
		var names []string
		for i := 0; i < r.Size(c); i++ {
			names = append(names, r.SubType(i, c).String())
		}
		rep.SubTypes[fmt.Sprintf("codim%d", c)] = names
	}
	for i := 0; i < r.Size(dim); i++ {
		rep.Corners = append(rep.Corners, r.Corner(i))
	}
	if dim > 0 {
		for f := 0; f < r.Size(1); f++ {
			rep.Normals = append(rep.Normals, r.IntegrationOuterNormal(f))
		}
	}
	return
}

func printReport(rep ElementReport) {
	fmt.Printf("%s (id %d, dim %d), volume %g\n", rep.Type, rep.TopologyID, rep.Dimension, rep.Volume)
	for c, n := range rep.Sizes {
		fmt.Printf("  codim %d: %d [%s]\n", c, n, strings.Join(rep.SubTypes[fmt.Sprintf("codim%d", c)], " "))
	}
	for i, corner := range rep.Corners {
		fmt.Printf("  corner %d: %v\n", i, corner)
	}
	for f, normal := range rep.Normals {
		fmt.Printf("  normal %d: %v\n", f, normal)
	}
}
