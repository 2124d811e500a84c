package menu

import "fmt"

// AppName is the application title shown in the application menu.
const AppName = "Jot"

// Build constructs the application menu for the given platform.
// On platforms with a global application menu an extra leading submenu is
// prepended; otherwise the layout is identical.
func Build(p Platform) (*Menu, error) {
	var items []Item
	if p.HasAppMenu() {
		items = appMenuLayout()
	} else {
		items = defaultLayout()
	}

	m, err := New(AppName, p, items...)
	if err != nil {
		return nil, fmt.Errorf("build menu for %s: %w", p, err)
	}

	return m, nil
}

func appMenuLayout() []Item {
	return append([]Item{appMenu()}, defaultLayout()...)
}

func defaultLayout() []Item {
	return []Item{
		fileMenu(),
		editMenu(),
		viewMenu(),
		windowMenu(),
		helpMenu(),
	}
}

func appMenu() Item {
	return Submenu(AppName,
		Predefined(RoleAbout),
		Separator(),
		Predefined(RoleHide),
		Predefined(RoleHideOthers),
		Predefined(RoleShowAll),
		Separator(),
		Predefined(RoleQuit),
	)
}

func fileMenu() Item {
	return Submenu("File",
		Action(FileNew, "New", "CmdOrCtrl+N"),
		Action(FileOpen, "Open...", "CmdOrCtrl+O"),
		Action(FileSave, "Save", "CmdOrCtrl+S"),
		Action(FileSaveAs, "Save As...", "CmdOrCtrl+Shift+S"),
		Separator(),
		Action(FileRename, "Rename...", "CmdOrCtrl+Shift+R"),
		Separator(),
		Predefined(RoleCloseWindow),
	)
}

func editMenu() Item {
	return Submenu("Edit",
		Predefined(RoleUndo),
		Predefined(RoleRedo),
		Separator(),
		Predefined(RoleCut),
		Predefined(RoleCopy),
		Predefined(RolePaste),
		Separator(),
		Predefined(RoleSelectAll),
	)
}

func viewMenu() Item {
	return Submenu("View",
		Action(ViewFontSerif, "Serif Font", ""),
		Action(ViewFontSans, "Sans Font", ""),
		Action(ViewFontMono, "Mono Font", ""),
		Separator(),
		Action(ViewWidthNarrow, "Narrow Width", ""),
		Action(ViewWidthWide, "Wide Width", ""),
		Separator(),
		Action(ViewZoomIn, "Zoom In", "CmdOrCtrl+="),
		Action(ViewZoomOut, "Zoom Out", "CmdOrCtrl+-"),
		Action(ViewZoomReset, "Actual Size", "CmdOrCtrl+0"),
		Separator(),
		Action(ViewThemeSystem, "Theme: System", ""),
		Action(ViewThemeLight, "Theme: Light", ""),
		Action(ViewThemeDark, "Theme: Dark", ""),
	)
}

func windowMenu() Item {
	return Submenu("Window",
		Predefined(RoleMinimize),
		Predefined(RoleMaximize),
		Separator(),
		Predefined(RoleCloseWindow),
	)
}

func helpMenu() Item {
	return Submenu("Help",
		Action(HelpDocs, "Writing Tips", ""),
	)
}
