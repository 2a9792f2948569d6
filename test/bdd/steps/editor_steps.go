package steps

import (
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"

	"github.com/stationforge/station-planner/internal/application/editor"
	"github.com/stationforge/station-planner/internal/domain/catalog"
	"github.com/stationforge/station-planner/internal/domain/station"
	"github.com/stationforge/station-planner/test/helpers"
)

type editorContext struct {
	cat     *catalog.Catalog
	dataDir string
	st      *station.Station
	ed      *editor.Editor

	lastApplied bool
}

func (ec *editorContext) reset() error {
	cat, dir, err := helpers.NewFixtureCatalog()
	if err != nil {
		return err
	}
	ec.cat = cat
	ec.dataDir = dir
	ec.st = station.New()
	ec.ed = editor.New(cat, ec.st, nil, nil, 0)
	ec.lastApplied = false
	return nil
}

func (ec *editorContext) cleanup() {
	if ec.dataDir != "" {
		os.RemoveAll(ec.dataDir)
		ec.dataDir = ""
	}
}

func (ec *editorContext) group(n int) (*station.Group, error) {
	if n < 1 || n > ec.st.Len() {
		return nil, fmt.Errorf("station has %d groups, no group %d", ec.st.Len(), n)
	}
	return ec.st.At(n - 1), nil
}

func (ec *editorContext) entry(moduleID string, groupNum int) (*station.ModuleInstance, error) {
	g, err := ec.group(groupNum)
	if err != nil {
		return nil, err
	}
	m, ok := g.ByID(moduleID)
	if !ok {
		return nil, fmt.Errorf("group %d has no entry for %q", groupNum, moduleID)
	}
	return m, nil
}

func (ec *editorContext) findEntry(moduleID string) (*station.ModuleInstance, error) {
	for _, g := range ec.st.Groups() {
		if m, ok := g.ByID(moduleID); ok {
			return m, nil
		}
	}
	return nil, fmt.Errorf("no group contains an entry for %q", moduleID)
}

// Given steps

func (ec *editorContext) anEmptyStationDocument() error {
	return nil // reset in the Before hook builds it
}

func (ec *editorContext) theFirstGroupIsSelected() error {
	ec.ed.SetSelection(editor.SelectGroup(ec.st.At(0)))
	return nil
}

func (ec *editorContext) nothingIsSelected() error {
	ec.ed.SetSelection(editor.Selection{})
	return nil
}

// When steps

func (ec *editorContext) iAddAModule(moduleID string) error {
	def, err := ec.cat.Module(moduleID)
	if err != nil {
		return err
	}
	ec.lastApplied = ec.ed.DoOperation(editor.NewAddModuleOperation(def))
	return nil
}

func (ec *editorContext) iChangeTheAmountOfTo(moduleID string, amount int) error {
	m, err := ec.findEntry(moduleID)
	if err != nil {
		return err
	}
	ec.lastApplied = ec.ed.DoOperation(editor.NewChangeModuleAmountOperation(m, amount))
	return nil
}

func (ec *editorContext) iAddANewGroup() error {
	ec.lastApplied = ec.ed.AddGroup()
	return nil
}

func (ec *editorContext) iUndo() error {
	ec.ed.Undo()
	return nil
}

func (ec *editorContext) iRedo() error {
	ec.ed.Redo()
	return nil
}

func (ec *editorContext) iSelectTheEntryInGroup(moduleID string, groupNum int) error {
	m, err := ec.entry(moduleID, groupNum)
	if err != nil {
		return err
	}
	ec.ed.SetSelection(editor.SelectModule(m))
	return nil
}

func (ec *editorContext) iSelectGroup(groupNum int) error {
	g, err := ec.group(groupNum)
	if err != nil {
		return err
	}
	ec.ed.SetSelection(editor.SelectGroup(g))
	return nil
}

func (ec *editorContext) iCopyTheSelection() error {
	if !ec.ed.Copy() {
		return fmt.Errorf("copy failed")
	}
	return nil
}

func (ec *editorContext) iCutTheSelection() error {
	if !ec.ed.Cut() {
		return fmt.Errorf("cut failed")
	}
	return nil
}

func (ec *editorContext) iPaste() error {
	ec.lastApplied = ec.ed.Paste()
	return nil
}

// Then steps

func (ec *editorContext) theFirstGroupShouldContainEntries(count int) error {
	return ec.groupShouldContainEntries(1, count)
}

func (ec *editorContext) groupShouldContainEntries(groupNum, count int) error {
	g, err := ec.group(groupNum)
	if err != nil {
		return err
	}
	if g.Len() != count {
		return fmt.Errorf("expected group %d to contain %d entries, got %d", groupNum, count, g.Len())
	}
	return nil
}

func (ec *editorContext) theEntryShouldHaveAmount(moduleID string, amount int) error {
	return ec.theEntryInGroupShouldHaveAmount(moduleID, 1, amount)
}

func (ec *editorContext) theEntryInGroupShouldHaveAmount(moduleID string, groupNum, amount int) error {
	m, err := ec.entry(moduleID, groupNum)
	if err != nil {
		return err
	}
	if m.Amount() != amount {
		return fmt.Errorf("expected %q amount %d, got %d", moduleID, amount, m.Amount())
	}
	return nil
}

func (ec *editorContext) theStationShouldHaveGroups(count int) error {
	if ec.st.Len() != count {
		return fmt.Errorf("expected %d groups, got %d", count, ec.st.Len())
	}
	return nil
}

func (ec *editorContext) theOperationShouldBeSkipped() error {
	if ec.lastApplied {
		return fmt.Errorf("expected the operation to be skipped, but it applied")
	}
	return nil
}

func (ec *editorContext) undoShouldNotBePossible() error {
	if ec.ed.CanUndo() {
		return fmt.Errorf("expected no undoable operation")
	}
	return nil
}

func (ec *editorContext) redoShouldNotBePossible() error {
	if ec.ed.CanRedo() {
		return fmt.Errorf("expected no redoable operation")
	}
	return nil
}

func InitializeEditorScenario(sc *godog.ScenarioContext) {
	ec := &editorContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, ec.reset()
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		ec.cleanup()
		return ctx, nil
	})

	sc.Step(`^an empty station document$`, ec.anEmptyStationDocument)
	sc.Step(`^the first group is selected$`, ec.theFirstGroupIsSelected)
	sc.Step(`^nothing is selected$`, ec.nothingIsSelected)

	sc.Step(`^I add a "([^"]*)" module$`, ec.iAddAModule)
	sc.Step(`^I change the amount of "([^"]*)" to (\d+)$`, ec.iChangeTheAmountOfTo)
	sc.Step(`^I add a new group$`, ec.iAddANewGroup)
	sc.Step(`^I undo$`, ec.iUndo)
	sc.Step(`^I redo$`, ec.iRedo)
	sc.Step(`^I select the "([^"]*)" entry in group (\d+)$`, ec.iSelectTheEntryInGroup)
	sc.Step(`^I select group (\d+)$`, ec.iSelectGroup)
	sc.Step(`^I copy the selection$`, ec.iCopyTheSelection)
	sc.Step(`^I cut the selection$`, ec.iCutTheSelection)
	sc.Step(`^I paste$`, ec.iPaste)

	sc.Step(`^the first group should contain (\d+) entries$`, ec.theFirstGroupShouldContainEntries)
	sc.Step(`^group (\d+) should contain (\d+) entries$`, ec.groupShouldContainEntries)
	sc.Step(`^the "([^"]*)" entry should have amount (\d+)$`, ec.theEntryShouldHaveAmount)
	sc.Step(`^the "([^"]*)" entry in group (\d+) should have amount (\d+)$`, ec.theEntryInGroupShouldHaveAmount)
	sc.Step(`^the station should have (\d+) groups$`, ec.theStationShouldHaveGroups)
	sc.Step(`^the operation should be skipped$`, ec.theOperationShouldBeSkipped)
	sc.Step(`^undo should not be possible$`, ec.undoShouldNotBePossible)
	sc.Step(`^redo should not be possible$`, ec.redoShouldNotBePossible)
}
