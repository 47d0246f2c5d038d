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
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/KriFos1/refelements/quadrature"
	"github.com/KriFos1/refelements/refelement"
	"github.com/KriFos1/refelements/topology"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the reference element tables",
	Long: `
Builds every reference element up to the given dimension and verifies the
internal consistency of the tables: barycenters lie inside, facet normals
point outward, quadrature weights sum to the reference volume,

refelements check --max-dim 4 --max-order 8 `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			maxDim, _   = cmd.Flags().GetInt("max-dim")
			maxOrder, _ = cmd.Flags().GetInt("max-order")
			prof, _     = cmd.Flags().GetBool("profile")
		)
		if prof {
			defer profile.Start().Stop()
		}
		failures := runChecks(maxDim, maxOrder)
		if failures > 0 {
			fmt.Printf("FAIL: %d check(s) failed\n", failures)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Int("max-dim", 4, "largest dimension to verify")
	checkCmd.Flags().Int("max-order", 8, "largest quadrature order to verify")
	checkCmd.Flags().Bool("profile", false, "write a CPU profile")
}

func runChecks(maxDim, maxOrder int) (failures int) {
	for dim := 0; dim <= maxDim; dim++ {
		failures += checkNumbering(dim)
		for _, r := range refelement.Elements(dim).All() {
			failures += checkElement(r, maxOrder)
		}
	}
	return
}

// checkNumbering verifies that the two numbering directions are mutual
// inverses for every topology id and codimension of one dimension.
func checkNumbering(dim int) (failures int) {
	p := topology.ForDimension(dim)
	for id := uint32(0); id < uint32(p.NumTopologies()); id++ {
		for codim := 0; codim <= dim; codim++ {
			for i := 0; i < p.Size(id, codim); i++ {
				if p.Generic2Legacy(id, p.Legacy2Generic(id, i, codim), codim) != i {
					fmt.Printf("id %d dim %d codim %d: numbering is not invertible at %d\n", id, dim, codim, i)
					failures++
				}
			}
		}
	}
	return
}

func checkElement(r *refelement.ReferenceElement, maxOrder int) (failures int) {
	var (
		dim  = r.Dimension()
		topo = r.Topology()
	)
	for c := 0; c <= dim; c++ {
		for i := 0; i < r.Size(c); i++ {
			if !r.CheckInside(r.Position(i, c)) {
				fmt.Printf("%s: position of subentity (%d,%d) outside the domain\n", topo, i, c)
				failures++
			}
		}
	}
	if dim > 0 {
		center := r.Position(0, 0)
		for f := 0; f < r.Size(1); f++ {
			var (
				n   = r.IntegrationOuterNormal(f)
				pos = r.Position(f, 1)
				dot float64
			)
			for k := range n {
				dot += n[k] * (pos[k] - center[k])
			}
			if dot <= 0 {
				fmt.Printf("%s: normal of face %d does not point outward\n", topo, f)
				failures++
			}
		}
	}
	for order := 0; order <= maxOrder; order++ {
		var (
			rule = quadrature.ForTopology(topo, order)
			sum  float64
		)
		for i := 0; i < rule.NumPoints(); i++ {
			sum += rule.Weight(i)
		}
		tol := 4 * float64(dim) * math.Max(float64(order), 1) * 2.220446049250313e-16
		if math.Abs(sum-r.Volume()) > tol+1e-15 {
			fmt.Printf("%s: order-%d weights sum to %g, want %g\n", topo, order, sum, r.Volume())
			failures++
		}
	}
	return
}
