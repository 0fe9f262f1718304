// internal/session/translations.go

package session

// DefaultLanguage is used whenever a stored or requested language is
// unknown, and as the fallback for missing keys.
const DefaultLanguage = "en"

// translations maps language code to UI string catalog. A key missing
// in a language falls back to English.
var translations = map[string]map[string]string{
	"en": {
		"app.name":             "Aviato",
		"app.tagline":          "Meet people on your schedule",
		"nav.discover":         "Discover",
		"nav.matches":          "Matches",
		"nav.chat":             "Chat",
		"nav.profile":          "Profile",
		"status.online":        "Online now",
		"status.active":        "Active",
		"status.offline":       "Offline",
		"status.locked":        "Not accepting messages",
		"status.paused":        "Taking a break",
		"status.maxed":         "Max contacts reached",
		"chat.placeholder":     "Type a message...",
		"chat.windowExpired":   "Time's up! How was the conversation?",
		"chat.rateGood":        "Good conversation",
		"chat.rateBad":         "Report a problem",
		"profile.editProfile":  "Edit Profile",
		"profile.interests":    "Interests",
		"profile.availability": "Availability",
		"auth.login":           "Log In",
		"auth.signup":          "Sign Up",
		"auth.logout":          "Log Out",
	},
	"es": {
		"app.name":             "Aviato",
		"app.tagline":          "Conoce gente según tu horario",
		"nav.discover":         "Descubrir",
		"nav.matches":          "Coincidencias",
		"nav.chat":             "Chat",
		"nav.profile":          "Perfil",
		"status.online":        "En línea ahora",
		"status.active":        "Activo",
		"status.offline":       "Desconectado",
		"status.locked":        "No acepta mensajes",
		"status.paused":        "Tomando un descanso",
		"status.maxed":         "Contactos al máximo",
		"chat.placeholder":     "Escribe un mensaje...",
		"chat.windowExpired":   "¡Se acabó el tiempo! ¿Qué tal la conversación?",
		"chat.rateGood":        "Buena conversación",
		"chat.rateBad":         "Reportar un problema",
		"profile.editProfile":  "Editar perfil",
		"profile.interests":    "Intereses",
		"profile.availability": "Disponibilidad",
		"auth.login":           "Iniciar sesión",
		"auth.signup":          "Registrarse",
		"auth.logout":          "Cerrar sesión",
	},
	"fr": {
		"app.name":             "Aviato",
		"app.tagline":          "Rencontrez des gens selon votre emploi du temps",
		"nav.discover":         "Découvrir",
		"nav.matches":          "Affinités",
		"nav.chat":             "Discussion",
		"nav.profile":          "Profil",
		"status.online":        "En ligne",
		"status.active":        "Actif",
		"status.offline":       "Hors ligne",
		"status.locked":        "N'accepte pas de messages",
		"status.paused":        "Fait une pause",
		"status.maxed":         "Nombre de contacts atteint",
		"chat.placeholder":     "Écrivez un message...",
		"chat.windowExpired":   "Temps écoulé ! Comment était la conversation ?",
		"chat.rateGood":        "Bonne conversation",
		"chat.rateBad":         "Signaler un problème",
		"profile.editProfile":  "Modifier le profil",
		"profile.interests":    "Centres d'intérêt",
		"profile.availability": "Disponibilité",
		"auth.login":           "Se connecter",
		"auth.signup":          "S'inscrire",
		"auth.logout":          "Se déconnecter",
	},
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{"en", "es", "fr"}
}

func validLanguage(code string) bool {
	_, ok := translations[code]
	return ok
}

// Translate resolves a key in the given language, falling back to
// English, then to the key itself.
func Translate(language, key string) string {
	if catalog, ok := translations[language]; ok {
		if s, ok := catalog[key]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLanguage][key]; ok {
		return s
	}
	return key
}
