package guardrails

// EmergencyResponse is returned verbatim when an emergency keyword matches.
const EmergencyResponse = `I need to pause our conversation here. What you're describing sounds like it could be a medical emergency.

**Please call 911 or go to your nearest emergency room right away.**

Your health and safety are the absolute priority. Once you've received proper medical care, we'd be happy to help you with any follow-up health optimization needs.`

// MedicalAdviceResponse is the canned refusal for dosage and treatment questions.
const MedicalAdviceResponse = `I really appreciate you trusting me with that question! However, specific medication dosages and treatment recommendations are something only our clinical team can provide.

Here's why: Everyone's body is unique. What works perfectly for one person might not be right for another. Our clinicians need to review your labs and health history to give you personalized guidance that's safe and effective.

Would you like me to help you book a consultation? Or if you haven't done bloodwork yet, that's usually the best first step so our team has the full picture.`

// PHISubstituteResponse replaces an assistant reply that solicited protected
// health information. The unsafe reply is never delivered; no regeneration
// call is made.
const PHISubstituteResponse = `Let me rephrase that. I actually don't need any personal details like your full name, date of birth, or insurance information to help you here. Keeping our chat focused on your health goals works best.

Would you like to learn more about our services, or book a consultation with our clinical team?`
