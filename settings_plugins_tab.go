package main

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/avreline/deskclock/pkg/settings"
)

func (sw *SettingsWindow) buildPluginsTab() fyne.CanvasObject {
	store := sw.dc.settings

	enabledCheck := widget.NewCheck("Enable plugins", func(checked bool) {
		store.Set(settings.KeyPluginsEnabled, checked)
		if checked {
			sw.dc.applyIntegrations()
		} else {
			sw.dc.plugins.Shutdown()
		}
	})
	enabledCheck.SetChecked(store.Bool(settings.KeyPluginsEnabled))

	rows := []fyne.CanvasObject{
		enabledCheck,
		widget.NewSeparator(),
	}

	for _, name := range sw.dc.plugins.Names() {
		p, ok := sw.dc.plugins.Get(name)
		if !ok {
			continue
		}
		pluginName := name

		check := widget.NewCheck(fmt.Sprintf("%s %s", p.Name(), p.Version()), func(checked bool) {
			if checked {
				if err := sw.dc.plugins.Enable(pluginName); err != nil {
					log.Warn().Err(err).Str("plugin", pluginName).Msg("failed to enable plugin")
					return
				}
			} else {
				sw.dc.plugins.Disable(pluginName)
			}
			store.SetJSON(settings.KeyEnabledPlugins, sw.dc.plugins.Enabled())
		})
		check.SetChecked(sw.dc.plugins.IsEnabled(pluginName))

		desc := widget.NewLabel(p.Description())
		desc.Importance = widget.MediumImportance

		actions := container.NewHBox()
		for _, item := range p.MenuItems() {
			action := item.Action
			actions.Add(widget.NewButton(item.Label, func() {
				sw.runPluginAction(pluginName, action)
			}))
		}

		rows = append(rows, check, desc, actions, widget.NewSeparator())
	}

	return container.NewPadded(container.NewVScroll(container.NewVBox(rows...)))
}

func (sw *SettingsWindow) runPluginAction(name, action string) {
	result, err := sw.dc.plugins.Execute(name, action)
	if err != nil {
		dialog.ShowError(err, sw.window)
		return
	}

	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, result[k]))
	}
	dialog.ShowInformation(action, strings.Join(lines, "\n"), sw.window)
}
