package mailer

import "fmt"

// Notification bodies for the four application/appointment events. Subjects
// and copy mirror the ones sent from contact@monderh.fr.

func ApplicationReceived(firstName, position string) (subject, body string) {
	subject = "Votre candidature a bien été reçue - MondeRH"
	body = fmt.Sprintf(`<p>Bonjour %s,</p>
<p>Nous avons bien reçu votre candidature pour le poste <strong>%s</strong>.</p>
<p>Notre équipe l'examinera dans les plus brefs délais et reviendra vers vous.</p>
<p>L'équipe MondeRH</p>`, firstName, position)
	return subject, body
}

func ApplicationUnderReview(firstName, position string) (subject, body string) {
	subject = "Votre candidature est en cours d'examen - MondeRH"
	body = fmt.Sprintf(`<p>Bonjour %s,</p>
<p>Votre candidature pour le poste <strong>%s</strong> est en cours d'examen par notre équipe.</p>
<p>L'équipe MondeRH</p>`, firstName, position)
	return subject, body
}

func ApplicationAccepted(firstName, position string) (subject, body string) {
	subject = "Bonne nouvelle concernant votre candidature - MondeRH"
	body = fmt.Sprintf(`<p>Bonjour %s,</p>
<p>Félicitations ! Votre candidature pour le poste <strong>%s</strong> a été retenue.</p>
<p>Nous vous contacterons prochainement pour la suite du processus.</p>
<p>L'équipe MondeRH</p>`, firstName, position)
	return subject, body
}

func ApplicationRejected(firstName, position string) (subject, body string) {
	subject = "Suite de votre candidature - MondeRH"
	body = fmt.Sprintf(`<p>Bonjour %s,</p>
<p>Après étude attentive, nous ne pouvons malheureusement pas donner suite à votre candidature pour le poste <strong>%s</strong>.</p>
<p>Nous conservons votre profil et vous recontacterons si une opportunité correspond.</p>
<p>L'équipe MondeRH</p>`, firstName, position)
	return subject, body
}

func AppointmentConfirmed(firstName, subjectLine, date, timeOfDay string) (subject, body string) {
	subject = "Confirmation de votre rendez-vous - MondeRH"
	body = fmt.Sprintf(`<p>Bonjour %s,</p>
<p>Votre rendez-vous <strong>%s</strong> est confirmé le %s à %s.</p>
<p>L'équipe MondeRH</p>`, firstName, subjectLine, date, timeOfDay)
	return subject, body
}
