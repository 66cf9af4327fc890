package usecases

// Disclaimer is the legal notice appended verbatim to every in-domain
// answer. Do not edit: downstream checks compare it byte for byte.
const Disclaimer = "⚠️ Les informations fournies par cet assistant virtuel sont données à titre " +
	"informatif uniquement et ne sauraient constituer un conseil juridique, fiscal " +
	"ou immobilier personnalisé. Pour toute décision engageant des conséquences " +
	"juridiques ou financières, il est fortement recommandé de consulter un " +
	"professionnel qualifié (avocat, notaire, expert‑comptable). Aucune " +
	"responsabilité ne pourra être retenue à l'encontre de l'auteur ou de l'éditeur " +
	"de ce service en cas d'erreur ou d'omission."

// OutOfScopeMessage is sent whenever the classifier rejects a message.
const OutOfScopeMessage = "Je suis l'assistant virtuel de Mathieu Lantoine et je ne peux répondre " +
	"qu'aux questions concernant l'immobilier, le droit immobilier, la fiscalité " +
	"immobilière ou les SCI en France. N'hésitez pas à me poser une question sur ces sujets."

// FallbackMessage replaces the answer when the completion API fails.
// Never includes upstream error detail.
const FallbackMessage = "Je rencontre actuellement un problème pour générer une réponse. " +
	"Veuillez réessayer plus tard."

// WelcomeMessage answers the /start command.
const WelcomeMessage = "Bonjour! Je suis l'assistant virtuel de Mathieu Lantoine, agent immobilier " +
	"spécialisé à Nice (06). Posez-moi vos questions sur l'immobilier, le droit " +
	"immobilier, la fiscalité immobilière ou les SCI et je ferai de mon mieux " +
	"pour vous répondre."

// HelpMessage answers the /help command.
const HelpMessage = "Je suis un assistant virtuel spécialisé en droit et fiscalité immobiliers. " +
	"Posez votre question de manière claire et je vous fournirai une réponse " +
	"aussi précise que possible, accompagnée d'un disclaimer juridique obligatoire."
