// LingoTeach - language-teaching voice skill backend
// License: MIT

package router

// Spoken responses. The wording is part of the product surface; tests pin it.
const (
	msgWelcome = `Greetings! You can ask Language Teacher to say something in different languages, or you can say "Help" to learn more.`

	msgWhatDoYouWant = "What do you want to do?"

	msgError = "Uh Oh. Looks like something went wrong"

	msgNext = "What do you want me to do next?"

	msgRepeatNA = "Looks like there is nothing to repeat. You can ask Language Teacher to say something in different languages. What do you want to ask?"

	msgGoodbye = "Bye!"

	msgUnhandled = `I don't know that but I'm learning. Say "help" to hear the options, or ask something else.`

	msgHelp = `You can ask Language Teacher to say something in different languages. For example, you can say: "Ask Language Teacher to say Hello", or "Ask Language Teacher to repeat" to listen to the translation again. To set the language - just say: "Ask Language Teacher to set the language to Japanese". What do you want to do?`

	msgUnknownLanguage = "I don't know this language but I'm learning. Please choose the language from Italian, Spanish, Japanese, German, Russian, Portuguese or French"

	msgWhichLanguage = "Which language do you want to choose?"

	msgRepeatHint = `Say "repeat" to listen again, or ask something else to get a new translation`

	cardTitle = "Language Teacher"
)
