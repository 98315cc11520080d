package i18n

var translations = map[Language]map[Key]string{
	LanguageSpanish: {
		KeyWelcome:              "¡Hola! Soy tu facilitador de capacitación. Para comenzar, ¿cuál es tu nombre?",
		KeyAskCompany:           "Mucho gusto, {name}. ¿En qué empresa trabajas?",
		KeyAskJob:               "¿Cuál es tu cargo actual?",
		KeyAskPhone:             "¿Cuál es tu número de teléfono?",
		KeyAskEmail:             "¿Cuál es tu correo electrónico?",
		KeyAskTopic:             "¿Sobre qué tema es la capacitación de hoy?",
		KeyAskFile:              "Perfecto. Sube el documento sobre {topic} para comenzar la sesión.",
		KeyFileTooLarge:         "El archivo es demasiado grande. El tamaño máximo es 4 MB.",
		KeyFileReceived:         "He recibido el archivo \"{fileName}\". Dame un momento para revisarlo.",
		KeyFileReviewed:         "He revisado el documento. ¿Qué dudas tienes sobre el material?",
		KeyErrorGeneric:         "Lo siento, ocurrió un error al generar la respuesta. Inténtalo de nuevo.",
		KeyGeneratingQuiz:       "Estoy generando un breve cuestionario sobre el documento...",
		KeyQuizTriggerCount:     "Hemos cubierto varias preguntas.",
		KeyQuizTriggerIdle:      "Parece que no tienes más dudas por ahora.",
		KeyQuizError:            "No pude generar el cuestionario. Sigamos con tus preguntas sobre el documento.",
		KeyQuizCompleted:        "¡Cuestionario completado! Obtuviste {correct} de {total} respuestas correctas.",
		KeyAskSendReport:        "¿Quieres enviar el reporte de resultados a tu facilitador?",
		KeyAskFacilitatorEmail:  "¿A qué correo electrónico debo enviar el reporte?",
		KeySentSuccess:          "Entendido. ¡Gracias por participar en la sesión!",
		KeyReadyToSend:          "Listo, el reporte está preparado para enviarse. ¡Gracias por participar!",
		KeyReportSubject:        "respuesta al cuestionario {topic}",
		KeyReportUserData:       "Datos del Usuario:",
		KeyReportName:           "Nombre",
		KeyReportCompany:        "Empresa",
		KeyReportJob:            "Cargo",
		KeyReportPhone:          "Teléfono",
		KeyReportEmail:          "Email",
		KeyReportTopic:          "Tema",
		KeyReportResults:        "Resultados del Quiz:",
		KeyReportScore:          "Puntaje",
		KeyReportQuestion:       "Pregunta",
		KeyReportUserAnswer:     "Respuesta del usuario",
		KeyReportCorrectAnswer:  "Respuesta correcta",
		KeyReportVerdict:        "Resultado",
		KeyReportVerdictCorrect: "CORRECTO",
		KeyReportVerdictWrong:   "INCORRECTO",
	},
	LanguageEnglish: {
		KeyWelcome:              "Hi! I'm your training facilitator. To get started, what's your name?",
		KeyAskCompany:           "Nice to meet you, {name}. What company do you work for?",
		KeyAskJob:               "What is your current job title?",
		KeyAskPhone:             "What is your phone number?",
		KeyAskEmail:             "What is your email address?",
		KeyAskTopic:             "What topic is today's training about?",
		KeyAskFile:              "Great. Upload the document about {topic} to start the session.",
		KeyFileTooLarge:         "The file is too large. The maximum size is 4 MB.",
		KeyFileReceived:         "I received the file \"{fileName}\". Give me a moment to review it.",
		KeyFileReviewed:         "I've reviewed the document. What questions do you have about the material?",
		KeyErrorGeneric:         "Sorry, something went wrong while generating the answer. Please try again.",
		KeyGeneratingQuiz:       "I'm generating a short quiz about the document...",
		KeyQuizTriggerCount:     "We've covered quite a few questions.",
		KeyQuizTriggerIdle:      "It looks like you have no more questions for now.",
		KeyQuizError:            "I couldn't generate the quiz. Let's continue with your questions about the document.",
		KeyQuizCompleted:        "Quiz completed! You got {correct} out of {total} answers right.",
		KeyAskSendReport:        "Would you like to send the results report to your facilitator?",
		KeyAskFacilitatorEmail:  "Which email address should I send the report to?",
		KeySentSuccess:          "Understood. Thanks for joining the session!",
		KeyReadyToSend:          "Done, the report is ready to be sent. Thanks for joining!",
		KeyReportSubject:        "quiz results for {topic}",
		KeyReportUserData:       "User Details:",
		KeyReportName:           "Name",
		KeyReportCompany:        "Company",
		KeyReportJob:            "Job Title",
		KeyReportPhone:          "Phone",
		KeyReportEmail:          "Email",
		KeyReportTopic:          "Topic",
		KeyReportResults:        "Quiz Results:",
		KeyReportScore:          "Score",
		KeyReportQuestion:       "Question",
		KeyReportUserAnswer:     "User answer",
		KeyReportCorrectAnswer:  "Correct answer",
		KeyReportVerdict:        "Result",
		KeyReportVerdictCorrect: "CORRECT",
		KeyReportVerdictWrong:   "INCORRECT",
	},
}
