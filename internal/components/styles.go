package components

import "github.com/3-lines-studio/elysium/internal/core"

const (
	buttonBase = "inline-flex items-center justify-center font-medium rounded-md transition-colors focus:outline-none focus:ring-2 focus:ring-offset-2"

	ButtonDisabledClasses = "opacity-50 cursor-not-allowed"
	ButtonEnabledClasses  = "cursor-pointer"
)

var ButtonVariants = core.StyleTable{
	Entries: map[string]string{
		"primary":   "bg-blue-600 text-white hover:bg-blue-700 focus:ring-blue-500",
		"secondary": "bg-gray-600 text-white hover:bg-gray-700 focus:ring-gray-500",
		"success":   "bg-green-600 text-white hover:bg-green-700 focus:ring-green-500",
		"danger":    "bg-red-600 text-white hover:bg-red-700 focus:ring-red-500",
		"warning":   "bg-yellow-500 text-white hover:bg-yellow-600 focus:ring-yellow-400",
		"info":      "bg-cyan-500 text-white hover:bg-cyan-600 focus:ring-cyan-400",
		"light":     "bg-gray-100 text-gray-900 hover:bg-gray-200 focus:ring-gray-300",
		"dark":      "bg-gray-900 text-white hover:bg-gray-800 focus:ring-gray-700",
		"link":      "bg-transparent text-blue-600 underline hover:text-blue-800 focus:ring-blue-500",
	},
	Default: "primary",
}

var ButtonSizes = core.StyleTable{
	Entries: map[string]string{
		"sm": "px-3 py-1.5 text-sm",
		"md": "px-4 py-2 text-base",
		"lg": "px-6 py-3 text-lg",
	},
	Default: "md",
}

const (
	inputWrapper = "mb-4"
	inputBase    = "block w-full rounded-md border px-3 py-2 shadow-sm focus:outline-none focus:ring-2"
	inputNormal  = "border-gray-300 focus:border-blue-500 focus:ring-blue-500"
	inputInvalid = "border-red-500 focus:border-red-500 focus:ring-red-500"

	InputDisabledClasses = "bg-gray-100 opacity-50 cursor-not-allowed"
	InputEnabledClasses  = "bg-white"

	labelClasses    = "block text-sm font-medium text-gray-700 mb-1"
	requiredClasses = "text-red-500 ml-1"
	errorClasses    = "mt-1 text-sm text-red-600"
	helperClasses   = "mt-1 text-sm text-gray-500"
)

const (
	cardBase     = "bg-white rounded-lg shadow-md overflow-hidden"
	cardHeader   = "px-6 py-4 border-b border-gray-200"
	cardTitle    = "text-lg font-semibold text-gray-900"
	cardSubtitle = "mt-1 text-sm text-gray-500"
	cardBody     = "px-6 py-4"
	cardFooter   = "px-6 py-4 bg-gray-50 border-t border-gray-200"
)

const layoutBody = "min-h-screen bg-gray-100 text-gray-900 antialiased"
