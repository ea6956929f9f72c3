package main

import (
	"fmt"

	"github.com/threepipe/huey"
	"github.com/threepipe/huey/fs"
	"github.com/threepipe/huey/htmltomarkdown"
)

// exportBatchSize bounds how many laws are held in memory at once
// while paging through the store.
const exportBatchSize = 500

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	laws, cleanup, err := openLawService(deps, c.Driver, c.DB, c.DSN)
	if err != nil {
		return err
	}
	defer cleanup()

	writer := fs.NewWriter(c.Out, htmltomarkdown.NewConverter())

	var written int
	for offset := 0; ; offset += exportBatchSize {
		batch, err := laws.FindLaws(deps.Ctx, huey.LawFilter{
			Limit:  exportBatchSize,
			Offset: offset,
		})
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			break
		}

		for _, law := range batch {
			if err := writer.CreateLaw(deps.Ctx, law); err != nil {
				return fmt.Errorf("export %s: %w", law.SectionNumber, err)
			}
			written++
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d laws to %s\n", written, c.Out)
	return nil
}
