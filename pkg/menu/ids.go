package menu

// ActionID is the stable identifier of an application menu action.
// Consumers match on the exact string, so values must never change.
type ActionID string

const (
	FileNew    ActionID = "file.new"
	FileOpen   ActionID = "file.open"
	FileSave   ActionID = "file.save"
	FileSaveAs ActionID = "file.save_as"
	FileRename ActionID = "file.rename"

	ViewWidthNarrow ActionID = "view.width.narrow"
	ViewWidthWide   ActionID = "view.width.wide"

	ViewZoomIn    ActionID = "view.zoom_in"
	ViewZoomOut   ActionID = "view.zoom_out"
	ViewZoomReset ActionID = "view.zoom_reset"

	ViewThemeSystem ActionID = "view.theme.system"
	ViewThemeLight  ActionID = "view.theme.light"
	ViewThemeDark   ActionID = "view.theme.dark"

	ViewFontSerif ActionID = "view.font.serif"
	ViewFontSans  ActionID = "view.font.sans"
	ViewFontMono  ActionID = "view.font.mono"

	HelpDocs ActionID = "help.docs"
)

// actionIDs is the closed allow-set of application actions.
var actionIDs = [...]ActionID{
	FileNew,
	FileOpen,
	FileSave,
	FileSaveAs,
	FileRename,
	ViewWidthNarrow,
	ViewWidthWide,
	ViewZoomIn,
	ViewZoomOut,
	ViewZoomReset,
	ViewThemeSystem,
	ViewThemeLight,
	ViewThemeDark,
	ViewFontSerif,
	ViewFontSans,
	ViewFontMono,
	HelpDocs,
}

var allowSet = func() map[ActionID]struct{} {
	set := make(map[ActionID]struct{}, len(actionIDs))
	for _, id := range actionIDs {
		set[id] = struct{}{}
	}
	return set
}()

// ActionIDs returns every application action identifier.
func ActionIDs() []ActionID {
	ids := make([]ActionID, len(actionIDs))
	copy(ids, actionIDs[:])
	return ids
}

// IsAction reports whether id names an application action.
func IsAction(id string) bool {
	_, ok := allowSet[ActionID(id)]
	return ok
}
