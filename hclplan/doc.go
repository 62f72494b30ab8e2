// SPDX-License-Identifier: MIT
//
// Package hclplan loads plan files written in HCL and turns them into a
// plan.Builder.
//
// A plan file is a sequence of task blocks:
//
//	task "fetch" {}
//
//	task "compile" {
//	  depends_on = ["fetch"]
//	  image      = "golang:1.24"
//	}
//
// depends_on lists the tasks that must finish first; every other attribute
// is kept as a cty.Value on Task.Attrs and carried through untouched. Tasks
// become nodes in file order, so file order is the tie-break inside a tier.
//
// Parse problems (syntax errors, duplicate or empty task names, unknown
// dependencies) are reported together as a *ParseError holding
// hcl.Diagnostics. Cycles are not detected here; Build reports them.
package hclplan
